package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"docshelf/internal/logging"
	"docshelf/internal/ports"
)

// SnapshotInfo summarizes a loaded snapshot
type SnapshotInfo struct {
	Location  string
	Entries   int
	Documents int
	Folders   int
	SavedAt   time.Time // zero when the source does not record it
}

// InfoCommand describes the snapshot at a source
type InfoCommand struct {
	source ports.SnapshotSource
}

// NewInfoCommand creates a new InfoCommand
func NewInfoCommand(source ports.SnapshotSource) *InfoCommand {
	return &InfoCommand{source: source}
}

// Execute loads the snapshot and counts its nodes. A load failure is returned.
func (c *InfoCommand) Execute(ctx context.Context) (SnapshotInfo, error) {
	tree, err := NewLoadTreeCommand(c.source).Execute(ctx)
	if err != nil {
		return SnapshotInfo{}, err
	}

	info := SnapshotInfo{
		Location:  c.source.Location(),
		Entries:   tree.Count(),
		Documents: tree.CountDocuments(),
	}
	info.Folders = info.Entries - info.Documents

	if stamp, ok := c.source.(ports.SnapshotStamp); ok {
		savedAt, err := stamp.SavedAt(ctx)
		if err != nil {
			logging.L().Warn("failed to read snapshot timestamp", zap.String("location", info.Location), zap.Error(err))
		} else {
			info.SavedAt = savedAt
		}
	}

	return info, nil
}
