package viewer

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"docshelf/internal/ports"
)

// Opener implements ports.Viewer and ports.ExternalOpener with the system opener
type Opener struct {
	baseURL string
	docRoot string
	run     func(name string, args ...string) error
}

var (
	_ ports.Viewer         = (*Opener)(nil)
	_ ports.ExternalOpener = (*Opener)(nil)
)

// NewOpener creates an opener. baseURL is prepended to relative references
// (for example http://localhost:8000); docRoot is where the documents live
// on disk and is only needed for OpenExternal.
func NewOpener(baseURL, docRoot string) *Opener {
	return &Opener{
		baseURL: strings.TrimRight(baseURL, "/"),
		docRoot: docRoot,
		run:     runCommand,
	}
}

// Open hands a viewer reference to the system opener
func (o *Opener) Open(reference string) error {
	uri, err := o.BuildURI(reference)
	if err != nil {
		return err
	}
	return o.openURI(uri)
}

// BuildURI turns a viewer reference into something the system opener accepts.
// Absolute URLs pass through; with a base URL the escaped reference is appended to it.
func (o *Opener) BuildURI(reference string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("empty viewer reference")
	}
	if strings.Contains(reference, "://") || o.baseURL == "" {
		return reference, nil
	}

	base, err := url.Parse(o.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid viewer base URL: %w", err)
	}

	// Escape each segment so names with spaces or '#' survive
	segments := strings.Split(strings.TrimLeft(reference, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return base.String() + "/" + strings.Join(segments, "/"), nil
}

// ExternalPath maps a tree path onto the document root
func (o *Opener) ExternalPath(path string) (string, error) {
	if o.docRoot == "" {
		return "", fmt.Errorf("document root is not configured")
	}

	full := filepath.Join(o.docRoot, filepath.FromSlash(path))
	rel, err := filepath.Rel(o.docRoot, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path is outside the document root: %s", path)
	}

	return full, nil
}

// OpenExternal opens a file the viewer cannot preview with the system's default application
func (o *Opener) OpenExternal(path string) error {
	full, err := o.ExternalPath(path)
	if err != nil {
		return err
	}
	return o.openURI(full)
}

func (o *Opener) openURI(uri string) error {
	switch runtime.GOOS {
	case "darwin":
		return o.run("open", uri)
	case "linux", "freebsd", "openbsd":
		return o.run("xdg-open", uri)
	case "windows":
		return o.run("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// runCommand starts the opener without waiting for the application it launches
func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	go cmd.Wait()
	return nil
}
