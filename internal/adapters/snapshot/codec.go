// Package snapshot reads and writes serialized document trees.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"docshelf/internal/domain"
)

// Format is a snapshot serialization
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks the format from a location's extension; JSON unless .yaml/.yml
func FormatFor(location string) Format {
	// Strip query strings so URLs like tree.yaml?v=2 still resolve
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// wireNode is the serialized shape of a node.
// "type" is what the scanner writes; "kind" is accepted on input as an alias.
type wireNode struct {
	Name      string      `json:"name" yaml:"name"`
	Type      string      `json:"type,omitempty" yaml:"type,omitempty"`
	Kind      string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Path      string      `json:"path" yaml:"path"`
	Extension *string     `json:"extension,omitempty" yaml:"extension,omitempty"`
	Children  *[]wireNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Decode parses a snapshot into a tree. Invariants are not checked here.
func Decode(r io.Reader, format Format) (domain.Tree, error) {
	var nodes []wireNode

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&nodes); err != nil && err != io.EOF {
			return domain.Tree{}, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&nodes); err != nil {
			return domain.Tree{}, fmt.Errorf("decode json snapshot: %w", err)
		}
	}

	return domain.NewTree(fromWire(nodes)), nil
}

// Encode writes a tree as a snapshot
func Encode(w io.Writer, tree domain.Tree, format Format) error {
	nodes := toWire(tree.Roots())

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return fmt.Errorf("encode yaml snapshot: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nodes); err != nil {
			return fmt.Errorf("encode json snapshot: %w", err)
		}
		return nil
	}
}

func fromWire(nodes []wireNode) []domain.Node {
	out := make([]domain.Node, 0, len(nodes))
	for _, w := range nodes {
		kind := w.Type
		if kind == "" {
			kind = w.Kind
		}

		n := domain.Node{
			Name: w.Name,
			Kind: domain.ParseKind(kind),
			Path: w.Path,
		}
		if w.Extension != nil {
			n.Extension = strings.ToLower(*w.Extension)
		}
		if w.Children != nil {
			n.Children = fromWire(*w.Children)
		}
		out = append(out, n)
	}
	return out
}

func toWire(nodes []domain.Node) []wireNode {
	out := make([]wireNode, 0, len(nodes))
	for _, n := range nodes {
		w := wireNode{
			Name: n.Name,
			Type: n.Kind.String(),
			Path: n.Path,
		}
		switch n.Kind {
		case domain.KindDirectory:
			children := toWire(n.Children)
			w.Children = &children
		case domain.KindFile:
			ext := n.Extension
			w.Extension = &ext
		}
		out = append(out, w)
	}
	return out
}
