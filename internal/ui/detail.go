package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/courtside-tui/courtside/internal/ui/styles"
	"github.com/courtside-tui/courtside/internal/view"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
)

// detailModel owns the box score region: the detail view model, plus the
// session tracking which game is open, which team tab is active and whether
// the inactive-player panels are expanded.
type detailModel struct {
	id        string
	session   *view.Session
	detail    view.GameDetail
	hasDetail bool
	loading   bool
	failed    bool
	width     int
	viewport  viewport.Model
	vpReady   bool
}

func newDetailModel() detailModel {
	return detailModel{id: zone.NewPrefix(), session: view.NewSession()}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		if !m.vpReady {
			m.viewport = viewport.New(m.width, 10)
			m.vpReady = true
		} else {
			m.viewport.Width = m.width
		}
	case gameSelectedMsg:
		m.session.Select(msg.gameID)
		m.loading = true
		m.failed = false
		m.hasDetail = false
	case boxScoreMsg:
		// A response for anything but the current selection is stale.
		if msg.detail.GameID != m.session.GameID() {
			return m, nil
		}

		m.detail = msg.detail
		m.hasDetail = true
		m.loading = false
	case boxScoreFailedMsg:
		if msg.gameID != m.session.GameID() {
			return m, nil
		}

		m.loading = false
		m.failed = true
	case tea.KeyMsg:
		if !m.hasDetail {
			break
		}

		switch {
		case key.Matches(msg, defaultKeyMap.toggleInactive):
			m.session.ToggleInactive(m.session.ActiveTab())
		case key.Matches(msg, defaultKeyMap.switchTab):
			if m.session.ActiveTab() == view.AwaySide {
				m.session.SwitchTab(view.HomeSide)
			} else {
				m.session.SwitchTab(view.AwaySide)
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if !m.hasDetail {
			return m, nil
		}

		switch {
		case zone.Get(m.id + "tab-away").InBounds(msg):
			m.session.SwitchTab(view.AwaySide)
		case zone.Get(m.id + "tab-home").InBounds(msg):
			m.session.SwitchTab(view.HomeSide)
		case zone.Get(m.id + "toggle").InBounds(msg):
			m.session.ToggleInactive(m.session.ActiveTab())
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m detailModel) Render(height int) string {
	var content string
	switch {
	case m.failed:
		content = styles.InfoMessage.Width(m.width).Render(
			wordwrap.String("Error fetching game details. Please try again later.", max(m.width-4, 10)))
	case m.session.GameID() == "":
		content = styles.InfoMessage.Width(m.width).Render("Select a game to view its box score.")
	case m.loading:
		content = styles.InfoMessage.Width(m.width).Render("Loading box score…")
	default:
		content = m.renderDetail()
	}

	if m.vpReady {
		m.viewport.Height = max(height-2, 1)
		m.viewport.SetContent(content)
		content = m.viewport.View()
	}

	return container("Box Score", m.width, height, content, false)
}

func (m detailModel) renderDetail() string {
	team := m.detail.Team(m.session.ActiveTab())

	toggleLabel := "Show Inactive Players"
	if m.session.InactiveOpen(m.session.ActiveTab()) {
		toggleLabel = "Hide Inactive Players"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.DetailTitle.Render(m.detail.Title),
		styles.DetailTipOff.Render(m.detail.TipOff),
		"",
		m.teamStatsTable(),
		"",
		m.tabsRow(),
		m.rosterTable(team),
		zone.Mark(m.id+"toggle", styles.ToggleControl.Render(toggleLabel)))
}

func (m detailModel) teamStatsTable() string {
	rows := [][]string{
		{m.detail.Away.Tricode, m.detail.Away.Points, m.detail.Away.FieldGoalPct, m.detail.Away.ThreePointPct, m.detail.Away.FreeThrowPct},
		{m.detail.Home.Tricode, m.detail.Home.Points, m.detail.Home.FieldGoalPct, m.detail.Home.ThreePointPct, m.detail.Home.FreeThrowPct},
	}

	winnerRow := -1
	if m.detail.Away.Winner {
		winnerRow = 0
	} else if m.detail.Home.Winner {
		winnerRow = 1
	}

	return newUnstyledTable("Team", "PTS", "FG%", "3P%", "FT%").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TableHeading
			case row == winnerRow:
				return styles.Winner
			case row%2 == 0:
				return styles.TableRowValuesEven
			default:
				return styles.TableRowValuesOdd
			}
		}).Render()
}

func (m detailModel) tabsRow() string {
	awayStyle, homeStyle := styles.TabsInactive, styles.TabsInactive
	if m.session.ActiveTab() == view.AwaySide {
		awayStyle = styles.TabsActive
	} else {
		homeStyle = styles.TabsActive
	}

	return styles.TabContainer.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(m.id+"tab-away", awayStyle.Render(m.detail.Away.Tricode)),
		zone.Mark(m.id+"tab-home", homeStyle.Render(m.detail.Home.Tricode))))
}

// rosterTable lists the active partition, with the inactive partition
// appended below it when the panel for this team is open. Source ordering is
// preserved; starters render with an emphasized name.
func (m detailModel) rosterTable(team view.TeamBox) string {
	var (
		rows     [][]string
		starters = map[int]bool{}
	)

	appendRows := func(players []view.PlayerRow) {
		for _, player := range players {
			if player.Starter {
				starters[len(rows)] = true
			}
			rows = append(rows, []string{
				player.Name,
				strconv.Itoa(player.Points),
				strconv.Itoa(player.Rebounds),
				strconv.Itoa(player.Assists),
				strconv.Itoa(player.Steals),
				strconv.Itoa(player.Blocks),
				strconv.Itoa(player.Turnovers),
			})
		}
	}

	appendRows(team.Active)
	inactiveStart := len(rows)
	if m.session.InactiveOpen(m.session.ActiveTab()) {
		appendRows(team.Inactive)
	}

	return newUnstyledTable("Player", "PTS", "REB", "AST", "STL", "BLK", "TO").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TableHeading
			case row >= inactiveStart:
				return styles.InactiveRowStyle
			case col == 0 && starters[row]:
				return styles.TableRowValuesEven.Bold(true)
			case row%2 == 0:
				return styles.TableRowValuesEven
			default:
				return styles.TableRowValuesOdd
			}
		}).Render()
}
