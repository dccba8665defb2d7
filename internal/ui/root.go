package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/courtside-tui/courtside/internal/config"
	"github.com/courtside-tui/courtside/internal/scores"
	"github.com/courtside-tui/courtside/internal/ui/styles"
	"github.com/courtside-tui/courtside/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

type contentView int

const (
	viewMain contentView = iota
	viewHelp
)

// rootModel is the top level model for the ui side of the app. It owns the
// navigation state and the per-target fetch sequence counters used to drop
// stale responses (cancel-and-replace).
type rootModel struct {
	width           int
	height          int
	currentView     contentView
	builder         view.Builder
	loc             *time.Location
	source          *scores.Source
	navigator       *scores.Navigator
	scoreboardModel scoreboardModel
	detailModel     detailModel
	statusModel     statusBarModel
	helpModel       helpModel
	boardSeq        int
	detailSeq       int
}

func newRootModel(userConfig config.Config, source *scores.Source, loader *config.Loader,
	buildVersion string, buildDate string, buildCommit string,
) rootModel {
	loc := userConfig.Location()

	return rootModel{
		currentView:     viewMain,
		builder:         view.NewBuilder(userConfig.PercentDecimals, loc),
		loc:             loc,
		source:          source,
		navigator:       scores.NewNavigator(time.Now().In(loc)),
		scoreboardModel: newScoreboardModel(),
		detailModel:     newDetailModel(),
		statusModel:     newStatusBarModel(buildVersion),
		helpModel:       newHelpModel(buildVersion, buildDate, buildCommit, loader.Path()),
		// Init issues the first scoreboard fetch with this sequence.
		boardSeq: 1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("courtside"),
		m.scoreboardModel.Init(),
		m.detailModel.Init(),
		m.statusModel.Init(),
		m.helpModel.Init(),
		fetchScoreboard(m.source, m.builder, m.navigator.Current(), m.boardSeq),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.currentView == viewHelp {
			if key.Matches(msg, defaultKeyMap.help) || key.Matches(msg, defaultKeyMap.back) ||
				key.Matches(msg, defaultKeyMap.quit) {
				m.currentView = viewMain
			}

			return m, nil
		}

		switch {
		case key.Matches(msg, defaultKeyMap.quit):
			return m, tea.Quit
		case key.Matches(msg, defaultKeyMap.help):
			m.currentView = viewHelp

			return m, nil
		case key.Matches(msg, defaultKeyMap.prevDay):
			return m.navigateDays(-1)
		case key.Matches(msg, defaultKeyMap.nextDay):
			return m.navigateDays(1)
		case key.Matches(msg, defaultKeyMap.refresh):
			m.boardSeq++
			model, cmd := m.propagate(inMsg)

			return model, tea.Batch(cmd,
				fetchScoreboard(model.source, model.builder, model.navigator.Current(), model.boardSeq))
		}
	case navigateMsg:
		return m.navigateDays(msg.delta)
	case RefreshRequest:
		// Only the live feed moves during play, past and future days are static.
		if m.currentView == viewMain && m.viewingToday() {
			m.boardSeq++

			return m, fetchScoreboard(m.source, m.builder, m.navigator.Current(), m.boardSeq)
		}

		return m, nil
	case scoreboardMsg:
		if msg.seq != m.boardSeq {
			slog.Debug("Dropping stale scoreboard response",
				slog.Int("seq", msg.seq), slog.Int("current", m.boardSeq))

			return m, nil
		}

		if msg.failed {
			model, cmd := m.propagate(inMsg)

			return model, tea.Batch(cmd, setStatusMessage("Score update failed. Please try again later.", true))
		}
	case boxScoreMsg:
		if msg.seq != m.detailSeq {
			slog.Debug("Dropping stale box score response",
				slog.Int("seq", msg.seq), slog.Int("current", m.detailSeq))

			return m, nil
		}
	case boxScoreFailedMsg:
		if msg.seq != m.detailSeq {
			return m, nil
		}

		model, cmd := m.propagate(inMsg)

		return model, tea.Batch(cmd, setStatusMessage("Failed to load box score", true))
	case gameSelectedMsg:
		m.detailSeq++
		model, cmd := m.propagate(inMsg)

		return model, tea.Batch(cmd,
			fetchBoxScore(model.source, model.builder, msg.gameID, model.detailSeq))
	case config.Config:
		m.builder = view.NewBuilder(msg.PercentDecimals, msg.Location())
		m.loc = msg.Location()
		model, cmd := m.propagate(inMsg)

		return model, tea.Batch(cmd, setStatusMessage("Configuration reloaded", false))
	}

	model, cmd := m.propagate(inMsg)

	return model, cmd
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	header := styles.HeaderContainerStyle.Width(m.width).
		Render(styles.WrapX(m.width, styles.AppTitle.Render(" courtside "), "─"))
	footer := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View())

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	var content string
	switch m.currentView {
	case viewHelp:
		content = m.helpModel.View()
	case viewMain:
		// Each container adds two rows of border.
		boardHeight := (contentHeight - 4) / 2
		detailHeight := contentHeight - boardHeight - 4

		content = lipgloss.JoinVertical(lipgloss.Left,
			m.scoreboardModel.Render(boardHeight),
			m.detailModel.Render(detailHeight))
	}

	ctr := styles.ContentContainerStyle.Height(contentHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, ctr, footer))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) viewingToday() bool {
	current := m.navigator.Current()
	now := time.Now().In(m.loc)

	return current.Year() == now.Year() && current.Month() == now.Month() && current.Day() == now.Day()
}

func (m rootModel) navigateDays(delta int) (tea.Model, tea.Cmd) {
	if delta != 0 {
		m.navigator.Forward(delta)
	}

	m.boardSeq++
	model, cmd := m.propagate(navigateMsg{delta: delta})

	return model, tea.Batch(cmd,
		fetchScoreboard(model.source, model.builder, model.navigator.Current(), model.boardSeq))
}

func (m rootModel) propagate(msg tea.Msg) (rootModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 4)

	m.scoreboardModel, cmds[0] = m.scoreboardModel.Update(msg)
	m.detailModel, cmds[1] = m.detailModel.Update(msg)
	m.statusModel, cmds[2] = m.statusModel.Update(msg)
	m.helpModel, cmds[3] = m.helpModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/courtside/courtside.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case scoreboardMsg:
	case boxScoreMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
