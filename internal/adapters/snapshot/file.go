package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"docshelf/internal/domain"
	"docshelf/internal/ports"
)

// FileSource loads a snapshot from a local JSON or YAML file
type FileSource struct {
	path string
}

var _ ports.SnapshotSource = (*FileSource)(nil)

// NewFileSource creates a source reading path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location returns the file path
func (s *FileSource) Location() string {
	return s.path
}

// Load reads and decodes the file
func (s *FileSource) Load(ctx context.Context) (domain.Tree, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tree{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return domain.Tree{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	return Decode(f, FormatFor(s.path))
}

// FileSink writes a snapshot to a local JSON or YAML file
type FileSink struct {
	path string
}

var _ ports.SnapshotSink = (*FileSink)(nil)

// NewFileSink creates a sink writing path
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Location returns the file path
func (s *FileSink) Location() string {
	return s.path
}

// Save encodes the tree and replaces the file atomically
func (s *FileSink) Save(ctx context.Context, tree domain.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, tree, FormatFor(s.path)); err != nil {
		return err
	}

	return atomicWriteFile(s.path, buf.Bytes())
}

// snapshotFileMode is the mode of a newly written snapshot. It is served
// next to the documents, so it must be world-readable.
const snapshotFileMode os.FileMode = 0o644

// atomicWriteFile replaces path with content. An existing file keeps its mode.
func atomicWriteFile(path string, content []byte) error {
	mode := snapshotFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".docshelf-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer os.Remove(tmpPath)

	if err := tmpFile.Chmod(mode); err != nil {
		tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
