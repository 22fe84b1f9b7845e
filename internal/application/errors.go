package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidLocation   = errors.New("invalid snapshot location")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// SnapshotError reports a snapshot that could not be loaded or decoded
type SnapshotError struct {
	Location string
	Err      error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s: %v", e.Location, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// MalformedError reports a snapshot whose nodes break the tree invariants
type MalformedError struct {
	Location string
	Err      error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("snapshot %s: %v", e.Location, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedSnapshot
}

// LocationError reports a snapshot location no adapter understands
type LocationError struct {
	Location string
	Reason   string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("invalid snapshot location %q: %s", e.Location, e.Reason)
}

func (e *LocationError) Is(target error) bool {
	return target == ErrInvalidLocation
}

// NotFoundError reports a path that names no node in the tree
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
