package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/courtside-tui/courtside/internal/config"
	"github.com/courtside-tui/courtside/internal/ui/styles"
)

func newHelpModel(buildVersion string, buildDate string, buildCommit string, configPath string) helpModel {
	return helpModel{
		helpView:     help.New(),
		configPath:   configPath,
		cachePath:    config.PathCache(config.CacheDirName),
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type helpModel struct {
	helpView     help.Model
	configPath   string
	cachePath    string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(_ tea.Msg) (helpModel, tea.Cmd) {
	return m, nil
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.prevDay,
			defaultKeyMap.nextDay,
			defaultKeyMap.up,
			defaultKeyMap.down,
			defaultKeyMap.accept,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.switchTab,
			defaultKeyMap.toggleInactive,
			defaultKeyMap.refresh,
			defaultKeyMap.help,
			defaultKeyMap.quit,
		},
	})

	return styles.HelpBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right),
		"",
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", m.buildCommit),
		styles.DetailRow("Built", m.buildDate),
		styles.DetailRow("Config", m.configPath),
		styles.DetailRow("Cache", m.cachePath)))
}
