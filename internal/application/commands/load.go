package commands

import (
	"context"

	"go.uber.org/zap"

	"docshelf/internal/application"
	"docshelf/internal/domain"
	"docshelf/internal/logging"
	"docshelf/internal/ports"
)

// LoadTreeCommand fetches the snapshot and validates it
type LoadTreeCommand struct {
	source ports.SnapshotSource
}

// NewLoadTreeCommand creates a new LoadTreeCommand
func NewLoadTreeCommand(source ports.SnapshotSource) *LoadTreeCommand {
	return &LoadTreeCommand{source: source}
}

// Execute loads the tree. On any failure the error is logged and an empty
// tree is returned alongside it; callers that browse can ignore the error.
func (c *LoadTreeCommand) Execute(ctx context.Context) (domain.Tree, error) {
	location := c.source.Location()

	tree, err := c.source.Load(ctx)
	if err != nil {
		err = &application.SnapshotError{Location: location, Err: err}
		logging.L().Error("failed to load snapshot", zap.String("location", location), zap.Error(err))
		return domain.NewTree(nil), err
	}

	if err := tree.Validate(); err != nil {
		err = &application.MalformedError{Location: location, Err: err}
		logging.L().Error("rejected malformed snapshot", zap.String("location", location), zap.Error(err))
		return domain.NewTree(nil), err
	}

	logging.L().Debug("snapshot loaded", zap.String("location", location), zap.Int("nodes", tree.Count()))
	return tree, nil
}
