package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local stores blobs on the local filesystem under a base directory and
// serves them from a static-file route.
type Local struct {
	dir       string
	publicURL string
}

// NewLocal creates a filesystem-backed storage rooted at dir. publicURL
// is the URL prefix the saved keys are served under.
func NewLocal(dir, publicURL string) *Local {
	if dir == "" {
		dir = "uploads"
	}
	if publicURL == "" {
		publicURL = "/uploads"
	}
	return &Local{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}
}

// Save writes the blob to dir/key, creating parent directories.
func (l *Local) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	dest := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", err
	}
	dst, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return l.publicURL + "/" + path.Clean(key), nil
}

// Delete removes the blob file if present.
func (l *Local) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(l.dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the local base directory, used to mount the static route.
func (l *Local) Dir() string {
	return l.dir
}

// PublicURL returns the URL prefix keys are served under.
func (l *Local) PublicURL() string {
	return l.publicURL
}
