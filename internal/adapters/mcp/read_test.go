package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docshelf/internal/domain"
)

func testLibrary() Library {
	return Library{
		RootPrefix: "/documents",
		Tree: domain.NewTree([]domain.Node{
			domain.NewDirectory("Economics", "Economics",
				domain.NewFile("book.pdf", "Economics/book.pdf", ".pdf"),
				domain.NewFile("notes.txt", "Economics/notes.txt", ".txt"),
			),
			domain.NewDirectory("History", "History"),
		}),
	}
}

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestList(t *testing.T) {
	lib := testLibrary()

	out, _ := call(t, listHandler(lib), nil)
	if !strings.Contains(out, "Economics") || !strings.Contains(out, "History") {
		t.Errorf("root listing = %q", out)
	}

	out, _ = call(t, listHandler(lib), map[string]any{"path": "Economics"})
	if !strings.Contains(out, "Economics/book.pdf") {
		t.Errorf("folder listing = %q", out)
	}

	out, _ = call(t, listHandler(lib), map[string]any{"path": "Nope"})
	if out != "Empty folder." {
		t.Errorf("unknown folder = %q", out)
	}
}

func TestSearch(t *testing.T) {
	lib := testLibrary()

	out, isErr := call(t, searchHandler(lib), map[string]any{"query": "BOOK"})
	if isErr || !strings.Contains(out, "Economics/book.pdf") {
		t.Errorf("search = %q (error %v)", out, isErr)
	}

	_, isErr = call(t, searchHandler(lib), map[string]any{})
	if !isErr {
		t.Error("missing query should be a tool error")
	}
}

func TestTree(t *testing.T) {
	out, _ := call(t, treeHandler(testLibrary()), nil)

	want := "Economics/\n  book.pdf\n  notes.txt\nHistory/\n"
	if out != want {
		t.Errorf("tree =\n%s\nwant\n%s", out, want)
	}
}

func TestOpen(t *testing.T) {
	lib := testLibrary()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"Economics/book.pdf", "/documents/Economics/book.pdf", false},
		{"Economics", "Economics/notes.txt", false},
		{"Economics/notes.txt", "has no viewer", false},
		{"Economics/missing.pdf", "not found", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out, isErr := call(t, openHandler(lib), map[string]any{"path": tt.path})
			if isErr != tt.wantErr {
				t.Errorf("isError = %v, want %v", isErr, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("open = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}
