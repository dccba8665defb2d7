package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/courtside-tui/courtside/internal/ui/styles"
	"github.com/courtside-tui/courtside/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

// scoreboardModel renders the day scoreboard plus the date navigation row.
// Rows and nav controls are zone-marked so mouse clicks resolve against the
// current view model state, no per-render event rebinding.
type scoreboardModel struct {
	id       string
	board    view.Scoreboard
	ready    bool
	loading  bool
	selected int
	width    int
	viewport viewport.Model
	vpReady  bool
}

func newScoreboardModel() scoreboardModel {
	return scoreboardModel{id: zone.NewPrefix(), loading: true}
}

func (m scoreboardModel) Init() tea.Cmd {
	return nil
}

func (m scoreboardModel) Update(msg tea.Msg) (scoreboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		if !m.vpReady {
			m.viewport = viewport.New(m.width, 10)
			m.vpReady = true
		} else {
			m.viewport.Width = m.width
		}
	case scoreboardMsg:
		m.board = msg.board
		m.ready = true
		m.loading = false
		if m.selected >= len(m.board.Games) {
			m.selected = 0
		}
	case navigateMsg:
		m.loading = true
		m.selected = 0
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, defaultKeyMap.down):
			if m.selected < len(m.board.Games)-1 {
				m.selected++
			}
		case key.Matches(msg, defaultKeyMap.accept):
			if len(m.board.Games) > 0 {
				return m, selectGame(m.board.Games[m.selected].GameID)
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if zone.Get(m.id + "prev").InBounds(msg) {
			return m, navigate(-1)
		}

		if zone.Get(m.id + "next").InBounds(msg) {
			return m, navigate(1)
		}

		for index, game := range m.board.Games {
			if zone.Get(m.id + game.GameID).InBounds(msg) {
				m.selected = index

				return m, selectGame(game.GameID)
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m scoreboardModel) Render(height int) string {
	var content string
	switch {
	case m.loading:
		content = styles.InfoMessage.Width(m.width).Render("Loading scoreboard…")
	case len(m.board.Games) == 0:
		content = styles.InfoMessage.Width(m.width).Render("No games scheduled for this date.")
	default:
		rows := make([]string, 0, len(m.board.Games))
		for index, game := range m.board.Games {
			rows = append(rows, zone.Mark(m.id+game.GameID, m.gameRow(game, index)))
		}

		content = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	if m.vpReady {
		m.viewport.Height = max(height-3, 1)
		m.viewport.SetContent(content)
		content = m.viewport.View()
	}

	return container("Scoreboard", m.width, height,
		lipgloss.JoinVertical(lipgloss.Left, m.navRow(), content), true)
}

func (m scoreboardModel) navRow() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(m.id+"prev", styles.NavControl.Render("< Prev")),
		styles.NavDate.Render(m.board.DisplayDate),
		zone.Mark(m.id+"next", styles.NavControl.Render("Next >")))
}

func (m scoreboardModel) gameRow(summary view.GameSummary, index int) string {
	style := styles.GameRow
	if index%2 == 1 {
		style = styles.GameRowAlt
	}

	cursor := "  "
	if index == m.selected {
		cursor = styles.GameRowSelected.Render("❯") + " "
	}

	awayTeam := fmt.Sprintf("%3s", summary.AwayTricode)
	awayScore := fmt.Sprintf("%4s", summary.AwayScore)
	if summary.AwayWinner {
		awayTeam = styles.Winner.Render(awayTeam)
		awayScore = styles.Winner.Render(awayScore)
	} else {
		awayTeam = style.Render(awayTeam)
		awayScore = style.Render(awayScore)
	}

	homeTeam := fmt.Sprintf("%-3s", summary.HomeTricode)
	homeScore := fmt.Sprintf("%-4s", summary.HomeScore)
	if summary.HomeWinner {
		homeTeam = styles.Winner.Render(homeTeam)
		homeScore = styles.Winner.Render(homeScore)
	} else {
		homeTeam = style.Render(homeTeam)
		homeScore = style.Render(homeScore)
	}

	return cursor + awayTeam + style.Render(" @ ") + homeTeam +
		style.Render("  ") + awayScore + style.Render(" – ") + homeScore +
		style.Render(fmt.Sprintf("  %-14s", summary.StatusText))
}
