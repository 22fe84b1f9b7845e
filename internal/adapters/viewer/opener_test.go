package viewer

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		reference string
		wantURI   string
		wantErr   bool
	}{
		{
			name:      "no base URL passes reference through",
			reference: "/documents/Economics/book.pdf",
			wantURI:   "/documents/Economics/book.pdf",
		},
		{
			name:      "base URL is prepended",
			baseURL:   "http://localhost:8000",
			reference: "/documents/Economics/book.pdf",
			wantURI:   "http://localhost:8000/documents/Economics/book.pdf",
		},
		{
			name:      "trailing slash on base URL",
			baseURL:   "http://localhost:8000/",
			reference: "/documents/a.pdf",
			wantURI:   "http://localhost:8000/documents/a.pdf",
		},
		{
			name:      "segments are escaped",
			baseURL:   "https://docs.example.com",
			reference: "/documents/My Books/C# in depth.pdf",
			wantURI:   "https://docs.example.com/documents/My%20Books/C%23%20in%20depth.pdf",
		},
		{
			name:      "absolute reference ignores base URL",
			baseURL:   "http://localhost:8000",
			reference: "https://cdn.example.com/documents/a.pdf",
			wantURI:   "https://cdn.example.com/documents/a.pdf",
		},
		{
			name:    "empty reference",
			baseURL: "http://localhost:8000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(tt.baseURL, "")
			gotURI, err := opener.BuildURI(tt.reference)

			if (err != nil) != tt.wantErr {
				t.Errorf("BuildURI() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if gotURI != tt.wantURI {
				t.Errorf("BuildURI() = %q, want %q", gotURI, tt.wantURI)
			}
		})
	}
}

func TestExternalPath(t *testing.T) {
	root := t.TempDir()
	opener := NewOpener("", root)

	got, err := opener.ExternalPath("Economics/notes.txt")
	if err != nil {
		t.Fatalf("ExternalPath failed: %v", err)
	}
	if want := filepath.Join(root, "Economics", "notes.txt"); got != want {
		t.Errorf("ExternalPath() = %q, want %q", got, want)
	}

	if _, err := opener.ExternalPath("../escape.txt"); err == nil {
		t.Error("expected error for a path outside the root")
	}

	if _, err := NewOpener("", "").ExternalPath("a.txt"); err == nil {
		t.Error("expected error without a document root")
	}
}

func TestOpen_UsesSystemOpener(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("opener command differs on this platform")
	}

	var gotName string
	var gotArgs []string

	opener := NewOpener("http://localhost:8000", "")
	opener.run = func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	if err := opener.Open("/documents/a.pdf"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	wantName := "xdg-open"
	if runtime.GOOS == "darwin" {
		wantName = "open"
	}
	if gotName != wantName {
		t.Errorf("command = %q, want %q", gotName, wantName)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "http://localhost:8000/documents/a.pdf" {
		t.Errorf("args = %v", gotArgs)
	}
}
