package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docshelf/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder().Title("Docshelf Help")

	v.Line(RenderSection("Navigation"))
	v.Raw(helpLine("j / k / ↑ / ↓", "Move up/down"))
	v.Raw(helpLine("enter / l / →", "Enter folder or preview PDF"))
	v.Raw(helpLine("h / ← / backspace", "Back to parent folder"))
	v.Raw(helpLine("1 - 9", "Jump to breadcrumb"))
	v.Raw(helpLine("0 / ~", "Jump to root"))
	v.BlankLine()

	v.Line(RenderSection("Search"))
	v.Raw(helpLine("/", "Search all documents by name"))
	v.Raw(helpLine("enter / tab", "Keep results, leave the input"))
	v.Raw(helpLine("esc", "Clear search"))
	v.BlankLine()

	v.Line(RenderSection("Preview"))
	v.Raw(helpLine("v", "Open in viewer"))
	v.Raw(helpLine("y", "Copy viewer reference"))
	v.Raw(helpLine("esc", "Close preview"))
	v.Raw(helpLine("o", "Open a non-PDF file externally"))
	v.BlankLine()

	v.Line(RenderSection("General"))
	v.Raw(helpLine("?", "Toggle help"))
	v.Raw(helpLine("q / Ctrl+C", "Quit"))
	v.BlankLine()

	v.Raw(styles.HelpDesc.Render("Press "))
	v.Raw(styles.HelpKey.Render("esc"))
	v.Raw(styles.HelpDesc.Render(" or "))
	v.Raw(styles.HelpKey.Render("?"))
	v.Raw(styles.HelpDesc.Render(" to close"))

	return v.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
