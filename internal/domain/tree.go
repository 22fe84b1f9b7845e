package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tree is the loaded document hierarchy.
// It is never mutated after construction; returned slices are shared and must be treated as read-only.
type Tree struct {
	roots []Node
}

// NewTree wraps a sequence of top-level nodes
func NewTree(roots []Node) Tree {
	return Tree{roots: roots}
}

// Roots returns the top-level nodes
func (t Tree) Roots() []Node {
	return t.roots
}

// IsEmpty reports whether the tree has no top-level nodes
func (t Tree) IsEmpty() bool {
	return len(t.roots) == 0
}

// Validate checks every node of the tree against the structural invariants
func (t Tree) Validate() error {
	for _, n := range t.roots {
		if err := n.Validate(""); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the items visible at the given folder path.
// Each segment must name a directory at its level (first match wins, case-sensitive);
// any segment that does not collapses the result to empty.
func (t Tree) Resolve(segments []string) []Node {
	items := t.roots
	for _, segment := range segments {
		next, ok := findDirectory(items, segment)
		if !ok {
			return nil
		}
		items = next.Children
	}
	return items
}

func findDirectory(items []Node, name string) (Node, bool) {
	for _, item := range items {
		if item.Name == name && item.Kind == KindDirectory {
			return item, true
		}
	}
	return Node{}, false
}

// FoldCase applies full Unicode case folding, so "ß" folds to "ss".
// Search matches and highlights both compare folded strings.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// Search returns every node whose name contains query, ignoring case.
// Nodes are returned in pre-order: a directory precedes its matching descendants.
// An empty query matches nothing; callers fall back to the current folder.
func (t Tree) Search(query string) []Node {
	if query == "" {
		return nil
	}

	needle := FoldCase(query)

	var results []Node
	t.Walk(func(n Node) bool {
		if strings.Contains(FoldCase(n.Name), needle) {
			results = append(results, n)
		}
		return true
	})
	return results
}

// Walk visits every node in pre-order. Returning false from fn stops the walk.
func (t Tree) Walk(fn func(Node) bool) {
	walkNodes(t.roots, fn)
}

func walkNodes(nodes []Node, fn func(Node) bool) bool {
	for _, n := range nodes {
		if !fn(n) {
			return false
		}
		if n.Kind == KindDirectory {
			if !walkNodes(n.Children, fn) {
				return false
			}
		}
	}
	return true
}

// Find returns the node at the given path
func (t Tree) Find(path string) (Node, bool) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return Node{}, false
	}

	last := segments[len(segments)-1]
	for _, item := range t.Resolve(segments[:len(segments)-1]) {
		if item.Name == last {
			return item, true
		}
	}
	return Node{}, false
}

// Count returns the total number of nodes in the tree
func (t Tree) Count() int {
	count := 0
	t.Walk(func(Node) bool {
		count++
		return true
	})
	return count
}

// CountDocuments returns the number of file nodes in the tree
func (t Tree) CountDocuments() int {
	count := 0
	t.Walk(func(n Node) bool {
		if n.Kind == KindFile {
			count++
		}
		return true
	})
	return count
}
