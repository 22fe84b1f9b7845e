package domain

import (
	"fmt"
	"strings"
)

// Kind distinguishes the two shapes a Node can take
type Kind int

const (
	KindUnknown Kind = iota
	KindDirectory
	KindFile
)

// String returns the snapshot spelling of the kind
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseKind parses the snapshot spelling of a kind.
// Unrecognised values yield KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "directory", "dir", "folder":
		return KindDirectory
	case "file":
		return KindFile
	default:
		return KindUnknown
	}
}

// PDFExtension is the only extension the viewer can preview
const PDFExtension = ".pdf"

// Node represents one entry of the document collection.
// Directories own their Children; files carry an Extension.
type Node struct {
	Name      string // last path segment, e.g. "book.pdf"
	Kind      Kind
	Path      string // slash-joined ancestry, e.g. "Economics/book.pdf"
	Extension string // files only, lower-cased with leading dot
	Children  []Node // directories only, in scan order
}

// NewDirectory builds a directory node with a defined (possibly empty) child list
func NewDirectory(name, path string, children ...Node) Node {
	if children == nil {
		children = []Node{}
	}
	return Node{Name: name, Kind: KindDirectory, Path: path, Children: children}
}

// NewFile builds a file node. The extension is lower-cased.
func NewFile(name, path, extension string) Node {
	return Node{Name: name, Kind: KindFile, Path: path, Extension: strings.ToLower(extension)}
}

// IsDir reports whether the node is a directory
func (n Node) IsDir() bool {
	return n.Kind == KindDirectory
}

// IsPDF reports whether the node is a file the viewer can preview
func (n Node) IsPDF() bool {
	return n.Kind == KindFile && n.Extension == PDFExtension
}

// Validate checks the structural invariants of the node and its subtree.
// parentPath is the path of the enclosing directory, empty at the root.
func (n Node) Validate(parentPath string) error {
	if n.Name == "" {
		return &InvariantError{Path: n.Path, Reason: "missing name"}
	}
	if strings.Contains(n.Name, "/") {
		return &InvariantError{Path: n.Path, Reason: "name contains a path separator"}
	}

	want := JoinPath(parentPath, n.Name)
	if n.Path != want {
		return &InvariantError{Path: n.Path, Reason: fmt.Sprintf("path does not match ancestry, want %q", want)}
	}

	switch n.Kind {
	case KindDirectory:
		if n.Children == nil {
			return &InvariantError{Path: n.Path, Reason: "directory without children"}
		}
		for _, child := range n.Children {
			if err := child.Validate(n.Path); err != nil {
				return err
			}
		}
	case KindFile:
		if n.Children != nil {
			return &InvariantError{Path: n.Path, Reason: "file with children"}
		}
	default:
		return &InvariantError{Path: n.Path, Reason: "unknown kind"}
	}

	return nil
}

// InvariantError reports a node that breaks the tree invariants
type InvariantError struct {
	Path   string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("malformed node %q: %s", e.Path, e.Reason)
}

// JoinPath appends a name to a slash-delimited parent path
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// SplitPath splits a slash-delimited path into its non-empty segments.
// Leading, trailing and doubled slashes are ignored.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
