package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/courtside-tui/courtside/internal/ui/styles"
	"github.com/dustin/go-humanize"
)

type statusBarModel struct {
	width       int
	version     string
	statusMsg   string
	statusError bool
	updatedAt   time.Time
}

func newStatusBarModel(version string) statusBarModel {
	return statusBarModel{version: version}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case scoreboardMsg:
		m.updatedAt = time.Now()
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	}

	return m, nil
}

func (m statusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
	}

	if !m.updatedAt.IsZero() {
		args = append(args, styles.StatusUpdated.Render("updated "+humanize.Time(m.updatedAt)))
	}

	args = append(args,
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", defaultKeyMap.help.Help().Key, defaultKeyMap.help.Help().Desc)),
		m.status())

	return lipgloss.NewStyle().Width(m.width).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
