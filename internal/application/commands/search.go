package commands

import (
	"docshelf/internal/application"
	"docshelf/internal/domain"
)

// SearchCommand finds nodes whose names contain the query
type SearchCommand struct {
	tree  domain.Tree
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(tree domain.Tree, query string) *SearchCommand {
	return &SearchCommand{tree: tree, Query: query}
}

// Execute returns matches in pre-order. An empty query lists the roots.
func (c *SearchCommand) Execute() []domain.Node {
	b := application.NewBrowser("")
	b.SetTree(c.tree)
	b.SetQuery(c.Query)
	return b.VisibleItems()
}
