package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C6A0F6")).
			Padding(1, 1, 0, 1)

	// TaglineStyle styles the server address next to the title.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// TranscriptStyle frames the scrolling transcript.
	TranscriptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// ContentStyle styles transcript paragraphs.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// PanelStyle frames one of the stats panels.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// PanelLabelStyle styles the label inside a stats panel.
	PanelLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Bold(true)

	// ScoreStyle styles the feedback score value.
	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F")).
			Bold(true)

	// PromptStyle styles the "> " prompt before the input line.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C6A0F6")).
			Bold(true)

	// NoticeStyle styles the blocking notice modal.
	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#ED8796")).
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true).
			Padding(0, 2)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)
)
