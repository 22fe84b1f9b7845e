package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"docshelf/internal/domain"
)

type stubSource struct{}

func (stubSource) Load(context.Context) (domain.Tree, error) {
	return domain.NewTree([]domain.Node{domain.NewFile("a.pdf", "a.pdf", ".pdf")}), nil
}
func (stubSource) Location() string { return "stub.json" }

func TestApp_HelpRoundTrip(t *testing.T) {
	app := NewApp(stubSource{}, "/documents", nil, nil)
	app.Update(app.Init()())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	app.Update(cmd())
	if !strings.Contains(app.View(), "Docshelf Help") {
		t.Fatal("expected help view")
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(cmd())
	if !strings.Contains(app.View(), "a.pdf") {
		t.Error("expected browser view after closing help")
	}
}
