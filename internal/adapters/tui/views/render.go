package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"docshelf/internal/adapters/tui/styles"
	"docshelf/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderTitle renders a title with the standard title style
func RenderTitle(title string) string {
	return styles.Title.Render(title)
}

// RenderHighlighted renders text with every case-folded occurrence of query
// in the search match style
func RenderHighlighted(text, query string, base lipgloss.Style) string {
	matches := matchRanges(text, query)
	if len(matches) == 0 {
		return base.Render(text)
	}

	var b strings.Builder
	written := 0
	for _, m := range matches {
		if m[0] > written {
			b.WriteString(base.Render(text[written:m[0]]))
		}
		b.WriteString(styles.SearchMatch.Render(text[m[0]:m[1]]))
		written = m[1]
	}
	if written < len(text) {
		b.WriteString(base.Render(text[written:]))
	}
	return b.String()
}

// matchRanges returns the byte ranges of text whose folded form contains
// the folded query, in order and without overlap. A match that covers part
// of a folded rune, like one "s" of "ß", takes the whole rune.
func matchRanges(text, query string) [][2]int {
	needle := domain.FoldCase(query)
	if needle == "" {
		return nil
	}

	// owner[i] is the byte range in text of the rune that produced folded byte i
	var folded strings.Builder
	var owner [][2]int
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		f := domain.FoldCase(string(r))
		folded.WriteString(f)
		for range len(f) {
			owner = append(owner, [2]int{i, i + size})
		}
		i += size
	}
	haystack := folded.String()

	var ranges [][2]int
	written := 0
	for from := 0; from < len(haystack); {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			break
		}
		first, last := from+i, from+i+len(needle)-1
		start, end := max(owner[first][0], written), owner[last][1]
		if end > start {
			ranges = append(ranges, [2]int{start, end})
			written = end
		}
		from = last + 1
	}
	return ranges
}

// RenderMuted renders muted/secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderSection renders a help section heading
func RenderSection(name string) string {
	return styles.InputLabel.Render(name)
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(RenderTitle(title))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(RenderMuted(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
