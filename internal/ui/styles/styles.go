package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#c9082a")
	Navy   = lipgloss.Color("#17408b")
	Gold   = lipgloss.Color("#ffd700")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")

	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Navy)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	AppTitle = lipgloss.NewStyle().Bold(true).Foreground(Accent)

	NavControl = lipgloss.NewStyle().Bold(true).Foreground(Navy).PaddingLeft(1).PaddingRight(1)
	NavDate    = lipgloss.NewStyle().Bold(true).Foreground(White).PaddingLeft(2).PaddingRight(2)

	Winner     = lipgloss.NewStyle().Bold(true).Foreground(Gold)
	GameRow    = lipgloss.NewStyle().Foreground(White)
	GameRowAlt = lipgloss.NewStyle().Foreground(Whiter)
	// GameRowSelected marks the keyboard cursor, not a winner.
	GameRowSelected = lipgloss.NewStyle().Bold(true).Foreground(Black).Background(Navy)

	TableHeading       = lipgloss.NewStyle().Background(Black).Foreground(Navy).Bold(true)
	TableRowValuesEven = lipgloss.NewStyle().Background(GrayDark)
	TableRowValuesOdd  = lipgloss.NewStyle().Background(GrayDarkAlt)
	InactiveRowStyle   = lipgloss.NewStyle().Foreground(Gray)

	TabContainer = lipgloss.NewStyle().Align(lipgloss.Left)
	TabsInactive = lipgloss.NewStyle().Bold(true).Foreground(Gray).PaddingLeft(2).PaddingRight(2)
	TabsActive   = lipgloss.NewStyle().Bold(true).Foreground(Accent).PaddingLeft(2).PaddingRight(2)

	ToggleControl = lipgloss.NewStyle().Foreground(Navy).Underline(true)

	DetailTitle  = lipgloss.NewStyle().Bold(true).Foreground(White)
	DetailTipOff = lipgloss.NewStyle().Foreground(Whiter)

	StatusError   = lipgloss.NewStyle().Foreground(Accent).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Gold).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Navy).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusUpdated = lipgloss.NewStyle().Foreground(Gray).Align(lipgloss.Center).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(3)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all < 2 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
