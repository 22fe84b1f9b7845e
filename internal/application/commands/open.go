package commands

import (
	"fmt"
	"strings"

	"docshelf/internal/application"
	"docshelf/internal/domain"
	"docshelf/internal/ports"
)

// OpenResult is what clicking the node at a path did
type OpenResult struct {
	Node   domain.Node
	Action application.ClickAction
	// Reference is set when a PDF preview was opened
	Reference string
	// Items lists the folder entered when the node is a directory
	Items []domain.Node
}

// OpenCommand dispatches a click on the node at Path
type OpenCommand struct {
	tree       domain.Tree
	rootPrefix string
	viewer     ports.Viewer
	Path       string
}

// NewOpenCommand creates a new OpenCommand. viewer may be nil to only compute the reference.
func NewOpenCommand(tree domain.Tree, rootPrefix string, viewer ports.Viewer, path string) *OpenCommand {
	return &OpenCommand{tree: tree, rootPrefix: rootPrefix, viewer: viewer, Path: path}
}

// Execute finds the node and applies click dispatch to it
func (c *OpenCommand) Execute() (OpenResult, error) {
	node, ok := c.tree.Find(c.Path)
	if !ok {
		return OpenResult{}, &application.NotFoundError{Path: c.Path}
	}

	b := application.NewBrowser(c.rootPrefix)
	b.SetTree(c.tree)
	b.NavigateToPath(parentPath(node.Path))

	click := b.Click(node)
	result := OpenResult{Node: node, Action: click.Action, Reference: click.Reference}

	switch click.Action {
	case application.ClickEntered:
		result.Items = b.CurrentItems()
	case application.ClickPreviewed:
		if c.viewer != nil {
			if err := c.viewer.Open(click.Reference); err != nil {
				return result, fmt.Errorf("failed to open viewer: %w", err)
			}
		}
	}

	return result, nil
}

func parentPath(path string) string {
	segments := domain.SplitPath(path)
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], "/")
}
