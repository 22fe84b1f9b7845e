package domain

import (
	"slices"
	"testing"
)

func navigationAt(segments ...string) *Navigation {
	nav := &Navigation{}
	for _, s := range segments {
		nav.Enter(s)
	}
	return nav
}

func TestNavigation_EnterBackRoundTrip(t *testing.T) {
	starts := [][]string{
		nil,
		{"Economics"},
		{"Economics", "Macro"},
		{"does", "not", "exist"},
	}

	for _, start := range starts {
		nav := navigationAt(start...)
		before := nav.Segments()

		nav.Enter("child")
		nav.Back()

		if got := nav.Segments(); !slices.Equal(got, before) {
			t.Errorf("Enter+Back from %v = %v", before, got)
		}
	}
}

func TestNavigation_BackAtRoot(t *testing.T) {
	nav := &Navigation{}
	nav.Back()
	if !nav.AtRoot() {
		t.Errorf("Back at root should stay at root, got %v", nav.Segments())
	}
}

func TestNavigation_JumpTo(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		index int
		want  []string
	}{
		{"root from deep", []string{"a", "b", "c"}, -1, nil},
		{"root from root", nil, -1, nil},
		{"below -1 is root", []string{"a", "b"}, -5, nil},
		{"first crumb", []string{"a", "b", "c"}, 0, []string{"a"}},
		{"middle crumb", []string{"a", "b", "c"}, 1, []string{"a", "b"}},
		{"last crumb is no-op", []string{"a", "b", "c"}, 2, []string{"a", "b", "c"}},
		{"past the end is no-op", []string{"a"}, 7, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := navigationAt(tt.start...)
			nav.JumpTo(tt.index)
			got := nav.Segments()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("JumpTo(%d) from %v = %v, want %v", tt.index, tt.start, got, tt.want)
			}
		})
	}
}

func TestNavigation_NavigateToPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"Economics", []string{"Economics"}},
		{"Economics/Macro", []string{"Economics", "Macro"}},
		{"/Economics/Macro/", []string{"Economics", "Macro"}},
		{"Economics//Macro", []string{"Economics", "Macro"}},
		{"", []string{}},
		{"///", []string{}},
	}

	for _, tt := range tests {
		nav := navigationAt("somewhere", "else")
		nav.NavigateToPath(tt.path)
		if got := nav.Segments(); !slices.Equal(got, tt.want) {
			t.Errorf("NavigateToPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNavigation_SegmentsIsACopy(t *testing.T) {
	nav := navigationAt("a", "b")
	segs := nav.Segments()
	segs[0] = "mutated"

	if got := nav.Segments(); got[0] != "a" {
		t.Errorf("Segments leaked internal state: %v", got)
	}
}

func TestNavigation_String(t *testing.T) {
	if got := navigationAt("Economics", "Macro").String(); got != "Economics/Macro" {
		t.Errorf("String() = %q", got)
	}
	if got := (&Navigation{}).String(); got != "" {
		t.Errorf("root String() = %q", got)
	}
}

func TestPreview_StateMachine(t *testing.T) {
	var p Preview
	if p.IsOpen() {
		t.Fatal("zero preview should be closed")
	}

	p.Open("/documents/a.pdf")
	if !p.IsOpen() || p.Reference() != "/documents/a.pdf" {
		t.Fatalf("expected open with reference, got open=%v ref=%q", p.IsOpen(), p.Reference())
	}

	p.Open("/documents/b.pdf")
	if p.Reference() != "/documents/b.pdf" {
		t.Errorf("second open should replace reference, got %q", p.Reference())
	}

	p.Close()
	if p.IsOpen() || p.Reference() != "" {
		t.Errorf("expected closed, got open=%v ref=%q", p.IsOpen(), p.Reference())
	}
}

func TestViewerReference(t *testing.T) {
	tests := []struct {
		prefix, path, want string
	}{
		{"/documents", "Economics/book.pdf", "/documents/Economics/book.pdf"},
		{"/documents/", "Economics/book.pdf", "/documents/Economics/book.pdf"},
		{"/documents", "/Economics/book.pdf", "/documents/Economics/book.pdf"},
		{"https://docs.example.com/files", "a.pdf", "https://docs.example.com/files/a.pdf"},
		{"", "a.pdf", "/a.pdf"},
	}

	for _, tt := range tests {
		if got := ViewerReference(tt.prefix, tt.path); got != tt.want {
			t.Errorf("ViewerReference(%q, %q) = %q, want %q", tt.prefix, tt.path, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"directory", KindDirectory},
		{"Directory", KindDirectory},
		{"file", KindFile},
		{" file ", KindFile},
		{"symlink", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
