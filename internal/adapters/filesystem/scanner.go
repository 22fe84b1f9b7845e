package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docshelf/internal/domain"
	"docshelf/internal/ports"
)

// Scanner implements ports.Scanner by walking a local directory
type Scanner struct{}

// Ensure Scanner implements ports.Scanner
var _ ports.Scanner = (*Scanner)(nil)

// NewScanner creates a new filesystem scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan enumerates root recursively in directory-read order.
// Nothing is filtered or sorted; symlinks are recorded as files and not followed.
func (s *Scanner) Scan(ctx context.Context, root string) (domain.Tree, error) {
	root = expandHome(root)

	info, err := os.Stat(root)
	if err != nil {
		return domain.Tree{}, fmt.Errorf("failed to stat document root: %w", err)
	}
	if !info.IsDir() {
		return domain.Tree{}, fmt.Errorf("document root %s is not a directory", root)
	}

	nodes, err := s.scanDir(ctx, root, "")
	if err != nil {
		return domain.Tree{}, err
	}
	return domain.NewTree(nodes), nil
}

// scanDir reads dir, whose path relative to the root is rel ("" for the root)
func (s *Scanner) scanDir(ctx context.Context, dir, rel string) ([]domain.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	nodes := make([]domain.Node, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		nodePath := domain.JoinPath(rel, name)

		if entry.IsDir() {
			children, err := s.scanDir(ctx, filepath.Join(dir, name), nodePath)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, domain.NewDirectory(name, nodePath, children...))
			continue
		}

		nodes = append(nodes, domain.NewFile(name, nodePath, extension(name)))
	}

	return nodes, nil
}

// extension returns the suffix from the last dot; dotfiles like .bashrc have none
func extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}
	return name[i:]
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
