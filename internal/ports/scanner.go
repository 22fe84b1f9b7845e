package ports

import (
	"context"

	"docshelf/internal/domain"
)

// Scanner walks a document root and produces the tree snapshot.
// It runs at build time, never while browsing.
type Scanner interface {
	Scan(ctx context.Context, root string) (domain.Tree, error)
}
