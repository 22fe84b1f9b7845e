package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Folder    = lipgloss.Color("#60A5FA") // Blue
	Document  = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// Entry styles
	NodeDirectory = lipgloss.NewStyle().
			Foreground(Folder).
			Bold(true)

	NodePDF = lipgloss.NewStyle().
		Foreground(Document)

	NodeFile = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Entry indicators
	IconDirectory = "▶ "
	IconPDF       = "▤ "
	IconFile      = "  "

	// Breadcrumbs
	Crumb = lipgloss.NewStyle().
		Foreground(Secondary)

	CrumbCurrent = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Underline(true)

	CrumbIndex = lipgloss.NewStyle().
			Foreground(Muted)

	CrumbSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" / ")

	// Preview panel
	Preview = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Document).
		Padding(0, 1).
		MarginTop(1)

	PreviewTitle = lipgloss.NewStyle().
			Foreground(Document).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
