package ports

import (
	"context"
	"time"

	"docshelf/internal/domain"
)

// SnapshotSource loads a serialized document tree from a known location
type SnapshotSource interface {
	// Load fetches and decodes the snapshot. Implementations return the
	// decoded tree without validating invariants; callers validate.
	Load(ctx context.Context) (domain.Tree, error)

	// Location describes where the snapshot comes from (for logs and errors)
	Location() string
}

// SnapshotSink persists a document tree so a SnapshotSource can load it later
type SnapshotSink interface {
	Save(ctx context.Context, tree domain.Tree) error
	Location() string
}

// SnapshotStamp is implemented by sources that record when the snapshot was written
type SnapshotStamp interface {
	SavedAt(ctx context.Context) (time.Time, error)
}
