// Package localfs implements the upload file store on the local
// filesystem. Files land in a flat directory that the web adapter serves
// back verbatim under /uploads/.
package localfs

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// URLPrefix is the public path prefix under which stored files are served.
// Stored references are URLPrefix-relative and usable directly as URL paths.
const URLPrefix = "/uploads/"

// Compile-time interface satisfaction check.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore writes uploaded binaries into a single directory. Names are
// a millisecond timestamp plus a random suffix, so concurrent uploads
// cannot practically collide; nothing is ever overwritten or deleted.
type FileStore struct {
	root string
}

// New creates a FileStore rooted at dir, creating the directory if needed.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &FileStore{root: dir}, nil
}

// Root returns the directory uploads are written to, for static serving.
func (s *FileStore) Root() string {
	return s.root
}

// Store writes the content under a generated name that preserves the
// extension of originalFilename and returns the public URL path of the
// stored file.
func (s *FileStore) Store(content io.Reader, originalFilename string) (string, error) {
	// Base the extension on the bare filename; browsers may send a full path.
	ext := filepath.Ext(filepath.Base(originalFilename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	// O_EXCL turns the astronomically unlikely name collision into an
	// error instead of a silent overwrite.
	f, err := os.OpenFile(filepath.Join(s.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return path.Join(URLPrefix, name), nil
}
