package driven

import "io"

// FileStore persists uploaded binaries under a publicly served root.
type FileStore interface {
	// Store writes the content under a generated collision-resistant name
	// that preserves the extension of originalFilename, and returns the
	// root-relative URL path ("/uploads/<name>") of the stored file.
	Store(content io.Reader, originalFilename string) (string, error)
}
