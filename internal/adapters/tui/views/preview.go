package views

import (
	"path"

	"github.com/charmbracelet/lipgloss"

	"docshelf/internal/adapters/tui/styles"
	"docshelf/internal/domain"
)

// RenderPreview draws the preview panel for an open preview, or nothing when closed
func RenderPreview(p domain.Preview, width int) string {
	if !p.IsOpen() {
		return ""
	}

	ref := p.Reference()
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.PreviewTitle.Render(path.Base(ref)),
		RenderMuted(ref),
		"",
		RenderHelpLine(BrowserKeys.View, BrowserKeys.Copy, BrowserKeys.Cancel),
	)

	box := styles.Preview
	if width > 8 {
		box = box.Width(width - 8)
	}
	return box.Render(body)
}
