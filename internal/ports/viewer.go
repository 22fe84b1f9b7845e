package ports

// Viewer is the external collaborator that renders documents
type Viewer interface {
	// Open displays the document addressed by a viewer reference
	Open(reference string) error
}

// ExternalOpener hands a file that the viewer cannot preview to the system
type ExternalOpener interface {
	OpenExternal(path string) error
}
