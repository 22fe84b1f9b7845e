package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"docshelf/internal/logging"
	"docshelf/internal/ports"
)

// ScanCommand builds a snapshot from a document root and saves it
type ScanCommand struct {
	scanner ports.Scanner
	sink    ports.SnapshotSink
	Root    string
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(scanner ports.Scanner, sink ports.SnapshotSink, root string) *ScanCommand {
	return &ScanCommand{scanner: scanner, sink: sink, Root: root}
}

// Execute scans and saves, returning the number of nodes written
func (c *ScanCommand) Execute(ctx context.Context) (int, error) {
	tree, err := c.scanner.Scan(ctx, c.Root)
	if err != nil {
		return 0, err
	}

	if err := tree.Validate(); err != nil {
		return 0, fmt.Errorf("scan produced an invalid tree: %w", err)
	}

	if err := c.sink.Save(ctx, tree); err != nil {
		return 0, fmt.Errorf("failed to save snapshot to %s: %w", c.sink.Location(), err)
	}

	count := tree.Count()
	logging.L().Info("snapshot written",
		zap.String("root", c.Root),
		zap.String("location", c.sink.Location()),
		zap.Int("nodes", count),
	)
	return count, nil
}
