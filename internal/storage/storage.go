package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/veltrachem-web/internal/config"
)

// Storage persists uploaded blobs and returns the public URL other
// pages reference them by. Implementations are selected once at
// startup from configuration.
type Storage interface {
	// Save writes the blob at key and returns its public URL.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes the blob at key. Missing blobs are not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the storage backend named in cfg.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Backend {
	case "", "local":
		return NewLocal(cfg.Storage.Local.Dir, cfg.Storage.Local.PublicURL), nil
	case "remote":
		return NewHTTPRemote(cfg.Storage.Remote), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
