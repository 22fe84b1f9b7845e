package commands

import (
	"docshelf/internal/application"
	"docshelf/internal/domain"
)

// ListCommand lists the items of the folder at a path
type ListCommand struct {
	tree domain.Tree
	Path string
}

// NewListCommand creates a new ListCommand
func NewListCommand(tree domain.Tree, path string) *ListCommand {
	return &ListCommand{tree: tree, Path: path}
}

// Execute returns the folder's items. An unknown path is an empty folder.
func (c *ListCommand) Execute() []domain.Node {
	b := application.NewBrowser("")
	b.SetTree(c.tree)
	b.NavigateToPath(c.Path)
	return b.CurrentItems()
}
