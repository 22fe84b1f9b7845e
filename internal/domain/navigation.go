package domain

import "slices"

// Navigation is the current browsing location: folder names from the root.
// The zero value is the root.
type Navigation struct {
	segments []string
}

// Segments returns a copy of the current folder path
func (n *Navigation) Segments() []string {
	return slices.Clone(n.segments)
}

// AtRoot reports whether the location is the root
func (n *Navigation) AtRoot() bool {
	return len(n.segments) == 0
}

// Enter descends into folderName. No existence check is made.
func (n *Navigation) Enter(folderName string) {
	n.segments = append(n.segments, folderName)
}

// Back moves up one level; no-op at the root
func (n *Navigation) Back() {
	if len(n.segments) == 0 {
		return
	}
	n.segments = n.segments[:len(n.segments)-1]
}

// JumpTo truncates the location to the first index+1 segments.
// Any index below zero returns to the root; an index at or past the
// last segment leaves the location unchanged.
func (n *Navigation) JumpTo(index int) {
	if index < 0 {
		n.segments = nil
		return
	}
	if index+1 >= len(n.segments) {
		return
	}
	n.segments = n.segments[:index+1]
}

// NavigateToPath replaces the location with the non-empty segments of path
func (n *Navigation) NavigateToPath(path string) {
	n.segments = SplitPath(path)
}

// String returns the location as a slash-joined path
func (n *Navigation) String() string {
	path := ""
	for _, s := range n.segments {
		path = JoinPath(path, s)
	}
	return path
}
