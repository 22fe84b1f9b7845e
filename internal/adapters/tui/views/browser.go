package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"docshelf/internal/adapters/tui/styles"
	"docshelf/internal/application"
	"docshelf/internal/application/commands"
	"docshelf/internal/domain"
	"docshelf/internal/logging"
	"docshelf/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Root     key.Binding
	Crumb    key.Binding
	Search   key.Binding
	Cancel   key.Binding
	External key.Binding
	Copy     key.Binding
	View     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "backspace"),
		key.WithHelp("h/←", "back"),
	),
	Root: key.NewBinding(
		key.WithKeys("0", "~"),
		key.WithHelp("0/~", "root"),
	),
	Crumb: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	External: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open externally"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy reference"),
	),
	View: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "open in viewer"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SearchInputKeys are handled while the search input has focus
var SearchInputKeys = struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Cancel key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Accept: key.NewBinding(key.WithKeys("enter", "tab")),
	Cancel: key.NewBinding(key.WithKeys("esc")),
}

// BrowserModel is the model for the document browser view
type BrowserModel struct {
	ViewState

	source   ports.SnapshotSource
	viewer   ports.Viewer
	external ports.ExternalOpener
	copy     func(string) error

	browser *application.Browser
	input   textinput.Model
	loaded  bool
	cursor  int
	offset  int
}

// NewBrowserModel creates a new browser model. viewer and external may be nil.
func NewBrowserModel(source ports.SnapshotSource, rootPrefix string, viewer ports.Viewer, external ports.ExternalOpener) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "Search documents..."
	input.Prompt = "/ "

	return &BrowserModel{
		source:   source,
		viewer:   viewer,
		external: external,
		copy:     clipboard.WriteAll,
		browser:  application.NewBrowser(rootPrefix),
		input:    input,
	}
}

// Init starts loading the snapshot
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	// Failures are logged by the command and leave the tree empty
	tree, _ := commands.NewLoadTreeCommand(m.source).Execute(context.Background())
	return treeLoadedMsg{tree}
}

type treeLoadedMsg struct {
	tree domain.Tree
}

type statusMsg struct {
	message string
	err     bool
}

// Browser exposes the controller state
func (m *BrowserModel) Browser() *application.Browser {
	return m.browser
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.browser.SetTree(msg.tree)
		m.loaded = true
		m.resetCursor()
		return m, nil

	case statusMsg:
		m.SetMessage(msg.message, msg.err)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		if m.input.Focused() {
			return m, m.updateSearchInput(msg)
		}
		return m, m.handleKey(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, BrowserKeys.Down):
		m.moveCursor(1)

	case key.Matches(msg, BrowserKeys.Enter):
		if node, ok := m.selected(); ok {
			m.click(node)
		}

	case key.Matches(msg, BrowserKeys.Back):
		if m.browser.Searching() {
			m.clearSearch()
		} else {
			m.browser.Back()
		}
		m.resetCursor()

	case key.Matches(msg, BrowserKeys.Root):
		m.clearSearch()
		m.browser.JumpTo(-1)
		m.resetCursor()

	case key.Matches(msg, BrowserKeys.Crumb):
		// Crumb n is the n-th segment of the location
		m.clearSearch()
		m.browser.JumpTo(int(msg.Runes[0]-'1'))
		m.resetCursor()

	case key.Matches(msg, BrowserKeys.Search):
		m.input.SetValue(m.browser.Query())
		m.input.CursorEnd()
		return m.input.Focus()

	case key.Matches(msg, BrowserKeys.Cancel):
		switch {
		case m.browser.Preview().IsOpen():
			m.browser.ClosePreview()
		case m.browser.Searching():
			m.clearSearch()
			m.resetCursor()
		}

	case key.Matches(msg, BrowserKeys.Copy):
		return m.copyReference()

	case key.Matches(msg, BrowserKeys.View):
		return m.openInViewer()

	case key.Matches(msg, BrowserKeys.External):
		return m.openExternally()

	case key.Matches(msg, BrowserKeys.Help):
		return func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return nil
}

func (m *BrowserModel) updateSearchInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, SearchInputKeys.Cancel):
		m.input.Blur()
		m.clearSearch()
		m.resetCursor()
		return nil

	case key.Matches(msg, SearchInputKeys.Accept):
		m.input.Blur()
		return nil

	case key.Matches(msg, SearchInputKeys.Up):
		m.moveCursor(-1)
		return nil

	case key.Matches(msg, SearchInputKeys.Down):
		m.moveCursor(1)
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.browser.Query() {
		m.browser.SetQuery(m.input.Value())
		m.resetCursor()
	}
	return cmd
}

func (m *BrowserModel) click(node domain.Node) {
	result := m.browser.Click(node)

	switch result.Action {
	case application.ClickEntered:
		m.resetCursor()
	case application.ClickNavigated:
		m.input.SetValue("")
		m.resetCursor()
	case application.ClickPreviewed:
		logging.L().Debug("preview opened", zap.String("reference", result.Reference))
	}
}

func (m *BrowserModel) clearSearch() {
	m.input.SetValue("")
	m.browser.ClearQuery()
}

func (m *BrowserModel) copyReference() tea.Cmd {
	preview := m.browser.Preview()
	if !preview.IsOpen() {
		return nil
	}
	ref := preview.Reference()

	return func() tea.Msg {
		if err := m.copy(ref); err != nil {
			logging.L().Warn("clipboard unavailable", zap.Error(err))
			return statusMsg{message: "Clipboard unavailable: " + err.Error(), err: true}
		}
		return statusMsg{message: "Copied " + ref}
	}
}

func (m *BrowserModel) openInViewer() tea.Cmd {
	preview := m.browser.Preview()
	if !preview.IsOpen() || m.viewer == nil {
		return nil
	}
	ref := preview.Reference()

	return func() tea.Msg {
		if err := m.viewer.Open(ref); err != nil {
			logging.L().Error("failed to open viewer", zap.String("reference", ref), zap.Error(err))
			return statusMsg{message: err.Error(), err: true}
		}
		return statusMsg{message: "Opened " + ref}
	}
}

func (m *BrowserModel) openExternally() tea.Cmd {
	node, ok := m.selected()
	if !ok || node.IsDir() || node.IsPDF() || m.external == nil {
		return nil
	}

	return func() tea.Msg {
		if err := m.external.OpenExternal(node.Path); err != nil {
			logging.L().Error("failed to open file", zap.String("path", node.Path), zap.Error(err))
			return statusMsg{message: err.Error(), err: true}
		}
		return statusMsg{message: "Opened " + node.Name}
	}
}

func (m *BrowserModel) selected() (domain.Node, bool) {
	items := m.browser.VisibleItems()
	if m.cursor >= 0 && m.cursor < len(items) {
		return items[m.cursor], true
	}
	return domain.Node{}, false
}

func (m *BrowserModel) moveCursor(delta int) {
	n := len(m.browser.VisibleItems())
	m.cursor = max(0, min(m.cursor+delta, n-1))
	m.clampOffset()
}

func (m *BrowserModel) resetCursor() {
	m.cursor = 0
	m.offset = 0
}

// listHeight is how many entries fit between the header and the footer
func (m *BrowserModel) listHeight() int {
	reserved := 10
	if m.browser.Preview().IsOpen() {
		reserved += 5
	}
	if m.Height <= reserved {
		return 10
	}
	return m.Height - reserved
}

func (m *BrowserModel) clampOffset() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		return styles.App.Render("Loading...")
	}

	v := NewViewBuilder().Title("Docshelf")
	v.Line(m.renderBreadcrumbs())

	if m.input.Focused() || m.browser.Searching() {
		v.Line(m.input.View())
	}
	v.BlankLine()

	items := m.browser.VisibleItems()
	switch {
	case m.browser.Tree().IsEmpty():
		v.Muted("No documents.")
	case len(items) == 0 && m.browser.Searching():
		v.Muted(fmt.Sprintf("No matches for %q.", m.browser.Query()))
	case len(items) == 0:
		v.Muted("Empty folder.")
	default:
		end := min(len(items), m.offset+m.listHeight())
		for i := m.offset; i < end; i++ {
			v.Line(m.renderNode(items[i], i == m.cursor))
		}
		if len(items) > end || m.offset > 0 {
			v.Muted(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(items)))
		}
	}

	if preview := m.browser.Preview(); preview.IsOpen() {
		v.Raw(RenderPreview(preview, m.Width))
		v.BlankLine()
	}

	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Raw(styles.StatusBar.Render(m.statusLine()))
	v.BlankLine()
	v.Help(m.helpBindings()...)

	return v.String()
}

// statusLine shows the current folder and the number of documents in the collection
func (m *BrowserModel) statusLine() string {
	return fmt.Sprintf("/%s • %d documents", m.browser.Path(), m.browser.Tree().CountDocuments())
}

func (m *BrowserModel) renderBreadcrumbs() string {
	location := m.browser.Location()

	crumbs := []string{renderCrumb(0, "Documents", len(location) == 0)}
	for i, segment := range location {
		crumbs = append(crumbs, renderCrumb(i+1, segment, i == len(location)-1))
	}

	return strings.Join(crumbs, styles.CrumbSeparator.String())
}

func renderCrumb(index int, name string, current bool) string {
	style := styles.Crumb
	if current {
		style = styles.CrumbCurrent
	}
	label := style.Render(name)
	if index <= 9 {
		label = styles.CrumbIndex.Render(fmt.Sprintf("%d:", index)) + label
	}
	return label
}

func (m *BrowserModel) renderNode(node domain.Node, selected bool) string {
	var icon string
	var style = styles.NodeFile
	switch {
	case node.IsDir():
		icon = styles.IconDirectory
		style = styles.NodeDirectory
	case node.IsPDF():
		icon = styles.IconPDF
		style = styles.NodePDF
	default:
		icon = styles.IconFile
	}

	// Search results are labelled with their full path
	text := node.Name
	if m.browser.Searching() {
		text = node.Path
	}

	if selected {
		return "> " + icon + styles.NodeSelected.Render(text)
	}
	return "  " + icon + RenderHighlighted(text, m.browser.Query(), style)
}

func (m *BrowserModel) helpBindings() []key.Binding {
	if m.input.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithHelp("enter", "done")),
			key.NewBinding(key.WithHelp("esc", "cancel")),
		}
	}

	bindings := []key.Binding{BrowserKeys.Up, BrowserKeys.Enter, BrowserKeys.Back, BrowserKeys.Search}
	if m.browser.Preview().IsOpen() {
		bindings = append(bindings, BrowserKeys.View, BrowserKeys.Copy)
	}
	return append(bindings, BrowserKeys.Help, BrowserKeys.Quit)
}

// SetCopyFunc replaces the clipboard writer
func (m *BrowserModel) SetCopyFunc(fn func(string) error) {
	m.copy = fn
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
