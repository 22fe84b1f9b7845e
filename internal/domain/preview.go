package domain

import "strings"

// Preview is the state of the document preview surface.
// The zero value is closed; at most one document is previewed at a time.
type Preview struct {
	open      bool
	reference string
}

// Open shows the document at reference, replacing any open one
func (p *Preview) Open(reference string) {
	p.open = true
	p.reference = reference
}

// Close hides the preview surface
func (p *Preview) Close() {
	p.open = false
	p.reference = ""
}

// IsOpen reports whether a document is being previewed
func (p Preview) IsOpen() bool {
	return p.open
}

// Reference returns the viewer reference of the open document, empty when closed
func (p Preview) Reference() string {
	return p.reference
}

// ViewerReference joins the document-root prefix with a node path,
// e.g. ("/documents", "Economics/book.pdf") -> "/documents/Economics/book.pdf".
func ViewerReference(rootPrefix, path string) string {
	return strings.TrimRight(rootPrefix, "/") + "/" + strings.TrimLeft(path, "/")
}
