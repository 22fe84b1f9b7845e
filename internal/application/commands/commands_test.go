package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"docshelf/internal/application"
	"docshelf/internal/domain"
	"docshelf/internal/logging"
)

// fakeSource returns a fixed tree or error
type fakeSource struct {
	tree domain.Tree
	err  error
}

func (f *fakeSource) Load(ctx context.Context) (domain.Tree, error) { return f.tree, f.err }
func (f *fakeSource) Location() string                               { return "memory://tree.json" }

// fakeSink records what it was asked to save
type fakeSink struct {
	saved *domain.Tree
	err   error
}

func (f *fakeSink) Save(ctx context.Context, tree domain.Tree) error {
	if f.err != nil {
		return f.err
	}
	f.saved = &tree
	return nil
}
func (f *fakeSink) Location() string { return "memory://out.db" }

type fakeScanner struct {
	tree domain.Tree
	root string
}

func (f *fakeScanner) Scan(ctx context.Context, root string) (domain.Tree, error) {
	f.root = root
	return f.tree, nil
}

type fakeViewer struct {
	opened []string
}

func (f *fakeViewer) Open(reference string) error {
	f.opened = append(f.opened, reference)
	return nil
}

func libraryTree() domain.Tree {
	return domain.NewTree([]domain.Node{
		domain.NewDirectory("Economics", "Economics",
			domain.NewFile("book.pdf", "Economics/book.pdf", ".pdf"),
			domain.NewDirectory("Macro", "Economics/Macro",
				domain.NewFile("notes.txt", "Economics/Macro/notes.txt", ".txt"),
			),
		),
		domain.NewFile("Bookmarks.pdf", "Bookmarks.pdf", ".pdf"),
	})
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logging.Replace(zap.New(core)))
	return logs
}

func TestLoadTree_Success(t *testing.T) {
	observeLogs(t)

	tree, err := NewLoadTreeCommand(&fakeSource{tree: libraryTree()}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if tree.Count() != 5 {
		t.Errorf("Count() = %d, want 5", tree.Count())
	}
}

func TestLoadTree_FailureLogsAndReturnsEmptyTree(t *testing.T) {
	logs := observeLogs(t)
	ioErr := errors.New("connection refused")

	tree, err := NewLoadTreeCommand(&fakeSource{err: ioErr}).Execute(context.Background())

	if !tree.IsEmpty() {
		t.Error("tree should be empty after a failed load")
	}
	if !errors.Is(err, ioErr) {
		t.Errorf("error should wrap the source error, got %v", err)
	}
	var snapErr *application.SnapshotError
	if !errors.As(err, &snapErr) {
		t.Fatalf("expected *SnapshotError, got %T", err)
	}

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 error log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["location"]; got != "memory://tree.json" {
		t.Errorf("logged location = %v", got)
	}
}

func TestLoadTree_MalformedSnapshotFailsWholeLoad(t *testing.T) {
	observeLogs(t)

	bad := domain.NewTree([]domain.Node{
		domain.NewDirectory("ok", "ok"),
		{Name: "broken", Kind: domain.KindDirectory, Path: "broken"},
	})

	tree, err := NewLoadTreeCommand(&fakeSource{tree: bad}).Execute(context.Background())

	if !tree.IsEmpty() {
		t.Error("a malformed snapshot should leave the tree empty")
	}
	if !errors.Is(err, application.ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", []string{"Economics", "Bookmarks.pdf"}},
		{"Economics", []string{"book.pdf", "Macro"}},
		{"/Economics/Macro/", []string{"notes.txt"}},
		{"Nope", nil},
		{"Bookmarks.pdf", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := nodeNames(NewListCommand(libraryTree(), tt.path).Execute())
			if !equalStrings(got, tt.want) {
				t.Errorf("List(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	got := nodeNames(NewSearchCommand(libraryTree(), "BOOK").Execute())
	want := []string{"book.pdf", "Bookmarks.pdf"}
	if !equalStrings(got, want) {
		t.Errorf("Search = %v, want %v", got, want)
	}

	roots := nodeNames(NewSearchCommand(libraryTree(), "").Execute())
	if !equalStrings(roots, []string{"Economics", "Bookmarks.pdf"}) {
		t.Errorf("empty query should list roots, got %v", roots)
	}
}

func TestOpen(t *testing.T) {
	viewer := &fakeViewer{}

	t.Run("pdf opens the viewer", func(t *testing.T) {
		res, err := NewOpenCommand(libraryTree(), "/documents", viewer, "Economics/book.pdf").Execute()
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if res.Action != application.ClickPreviewed {
			t.Errorf("Action = %v, want previewed", res.Action)
		}
		if res.Reference != "/documents/Economics/book.pdf" {
			t.Errorf("Reference = %q", res.Reference)
		}
		if len(viewer.opened) != 1 || viewer.opened[0] != res.Reference {
			t.Errorf("viewer opened %v", viewer.opened)
		}
	})

	t.Run("directory lists its items", func(t *testing.T) {
		res, err := NewOpenCommand(libraryTree(), "/documents", nil, "Economics/Macro").Execute()
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if res.Action != application.ClickEntered {
			t.Errorf("Action = %v, want entered", res.Action)
		}
		if got := nodeNames(res.Items); !equalStrings(got, []string{"notes.txt"}) {
			t.Errorf("Items = %v", got)
		}
	})

	t.Run("other files are inert", func(t *testing.T) {
		res, err := NewOpenCommand(libraryTree(), "/documents", nil, "Economics/Macro/notes.txt").Execute()
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if res.Action != application.ClickNone || res.Reference != "" {
			t.Errorf("got %+v, want no effect", res)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewOpenCommand(libraryTree(), "/documents", nil, "Economics/missing.pdf").Execute()
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestScan(t *testing.T) {
	observeLogs(t)
	scanner := &fakeScanner{tree: libraryTree()}
	sink := &fakeSink{}

	count, err := NewScanCommand(scanner, sink, "/srv/docs").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
	if scanner.root != "/srv/docs" {
		t.Errorf("scanned %q", scanner.root)
	}
	if sink.saved == nil || sink.saved.Count() != 5 {
		t.Error("sink did not receive the tree")
	}
}

func TestExport(t *testing.T) {
	observeLogs(t)

	sink := &fakeSink{}
	count, err := NewExportCommand(&fakeSource{tree: libraryTree()}, sink).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count != 5 || sink.saved == nil {
		t.Errorf("count = %d, saved = %v", count, sink.saved != nil)
	}

	failing := &fakeSink{}
	_, err = NewExportCommand(&fakeSource{err: errors.New("boom")}, failing).Execute(context.Background())
	if err == nil {
		t.Error("expected load error")
	}
	if failing.saved != nil {
		t.Error("nothing should be saved after a failed load")
	}
}

// stampedSource is a fakeSource that records when it was saved
type stampedSource struct {
	fakeSource
	savedAt  time.Time
	stampErr error
}

func (s *stampedSource) SavedAt(ctx context.Context) (time.Time, error) {
	return s.savedAt, s.stampErr
}

func TestInfo(t *testing.T) {
	observeLogs(t)

	t.Run("counts", func(t *testing.T) {
		info, err := NewInfoCommand(&fakeSource{tree: libraryTree()}).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Entries != 5 || info.Documents != 3 || info.Folders != 2 {
			t.Errorf("counts = %d entries, %d documents, %d folders", info.Entries, info.Documents, info.Folders)
		}
		if info.Location != "memory://tree.json" {
			t.Errorf("location = %q", info.Location)
		}
		if !info.SavedAt.IsZero() {
			t.Errorf("SavedAt should be zero for a source without a timestamp, got %v", info.SavedAt)
		}
	})

	t.Run("saved at", func(t *testing.T) {
		when := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		source := &stampedSource{fakeSource: fakeSource{tree: libraryTree()}, savedAt: when}

		info, err := NewInfoCommand(source).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.SavedAt.Equal(when) {
			t.Errorf("SavedAt = %v, want %v", info.SavedAt, when)
		}
	})

	t.Run("timestamp failure is not fatal", func(t *testing.T) {
		logs := observeLogs(t)
		source := &stampedSource{fakeSource: fakeSource{tree: libraryTree()}, stampErr: errors.New("no meta")}

		info, err := NewInfoCommand(source).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.SavedAt.IsZero() || info.Entries != 5 {
			t.Errorf("info = %+v", info)
		}
		if logs.FilterMessage("failed to read snapshot timestamp").Len() != 1 {
			t.Error("expected a warning for the missing timestamp")
		}
	})

	t.Run("load failure", func(t *testing.T) {
		if _, err := NewInfoCommand(&fakeSource{err: errors.New("boom")}).Execute(context.Background()); err == nil {
			t.Error("expected load error")
		}
	})
}

func nodeNames(nodes []domain.Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
