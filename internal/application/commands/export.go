package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"docshelf/internal/logging"
	"docshelf/internal/ports"
)

// ExportCommand copies a snapshot from one location form to another
type ExportCommand struct {
	source ports.SnapshotSource
	sink   ports.SnapshotSink
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(source ports.SnapshotSource, sink ports.SnapshotSink) *ExportCommand {
	return &ExportCommand{source: source, sink: sink}
}

// Execute loads, validates and re-saves the snapshot. A failed load is an error here.
func (c *ExportCommand) Execute(ctx context.Context) (int, error) {
	tree, err := NewLoadTreeCommand(c.source).Execute(ctx)
	if err != nil {
		return 0, err
	}

	if err := c.sink.Save(ctx, tree); err != nil {
		return 0, fmt.Errorf("failed to save snapshot to %s: %w", c.sink.Location(), err)
	}

	count := tree.Count()
	logging.L().Info("snapshot exported",
		zap.String("from", c.source.Location()),
		zap.String("to", c.sink.Location()),
		zap.Int("nodes", count),
	)
	return count, nil
}
