package application

import "docshelf/internal/domain"

// ClickAction names the effect of selecting an item
type ClickAction int

const (
	// ClickNone means the selection had no effect
	ClickNone ClickAction = iota
	// ClickEntered means the browser descended into a folder
	ClickEntered
	// ClickNavigated means a search result folder was opened and the query cleared
	ClickNavigated
	// ClickPreviewed means a document was opened in the preview surface
	ClickPreviewed
)

func (a ClickAction) String() string {
	switch a {
	case ClickEntered:
		return "entered"
	case ClickNavigated:
		return "navigated"
	case ClickPreviewed:
		return "previewed"
	default:
		return "none"
	}
}

// ClickResult describes what a click did
type ClickResult struct {
	Action    ClickAction
	Reference string // viewer reference, set for ClickPreviewed
}

// Browser owns the browsing state: location, search query and preview.
// Visible items are always derived from the tree and that state, never stored.
// A Browser is not safe for concurrent use.
type Browser struct {
	tree       domain.Tree
	nav        domain.Navigation
	query      string
	preview    domain.Preview
	rootPrefix string
}

// NewBrowser creates a browser over an empty tree.
// An empty rootPrefix builds references relative to the site root.
func NewBrowser(rootPrefix string) *Browser {
	return &Browser{rootPrefix: rootPrefix}
}

// SetTree installs the loaded tree
func (b *Browser) SetTree(tree domain.Tree) {
	b.tree = tree
}

// Tree returns the loaded tree
func (b *Browser) Tree() domain.Tree {
	return b.tree
}

// RootPrefix returns the prefix used to build viewer references
func (b *Browser) RootPrefix() string {
	return b.rootPrefix
}

// Location returns the current folder path segments
func (b *Browser) Location() []string {
	return b.nav.Segments()
}

// Path returns the current folder as a slash-joined path; empty at the root
func (b *Browser) Path() string {
	return b.nav.String()
}

// CurrentItems returns the items of the current folder
func (b *Browser) CurrentItems() []domain.Node {
	return b.tree.Resolve(b.nav.Segments())
}

// VisibleItems returns search results while a query is active,
// otherwise the items of the current folder
func (b *Browser) VisibleItems() []domain.Node {
	if b.Searching() {
		return b.tree.Search(b.query)
	}
	return b.CurrentItems()
}

// Enter descends into a folder of the current location
func (b *Browser) Enter(folderName string) {
	b.nav.Enter(folderName)
}

// Back moves up one folder
func (b *Browser) Back() {
	b.nav.Back()
}

// JumpTo moves to the breadcrumb at index; -1 is the root
func (b *Browser) JumpTo(index int) {
	b.nav.JumpTo(index)
}

// NavigateToPath moves directly to a slash-delimited folder path
func (b *Browser) NavigateToPath(path string) {
	b.nav.NavigateToPath(path)
}

// Query returns the active search query
func (b *Browser) Query() string {
	return b.query
}

// SetQuery replaces the search query
func (b *Browser) SetQuery(query string) {
	b.query = query
}

// ClearQuery leaves search mode
func (b *Browser) ClearQuery() {
	b.query = ""
}

// Searching reports whether a search query is active
func (b *Browser) Searching() bool {
	return b.query != ""
}

// Preview returns the preview surface state
func (b *Browser) Preview() domain.Preview {
	return b.preview
}

// ClosePreview closes the preview surface
func (b *Browser) ClosePreview() {
	b.preview.Close()
}

// Click applies the selection policy to an item:
// folders are opened (a search result folder also ends the search),
// PDFs are previewed, anything else is ignored.
func (b *Browser) Click(node domain.Node) ClickResult {
	switch {
	case node.IsDir():
		if b.Searching() {
			b.NavigateToPath(node.Path)
			b.ClearQuery()
			return ClickResult{Action: ClickNavigated}
		}
		b.Enter(node.Name)
		return ClickResult{Action: ClickEntered}

	case node.IsPDF():
		ref := domain.ViewerReference(b.rootPrefix, node.Path)
		b.preview.Open(ref)
		return ClickResult{Action: ClickPreviewed, Reference: ref}
	}

	return ClickResult{Action: ClickNone}
}
