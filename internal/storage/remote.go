package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/veltrachem-web/internal/config"
)

// HTTPRemote stores blobs on an external blob store over its HTTP API:
// PUT uploads a blob at its key, DELETE removes it.
type HTTPRemote struct {
	endpoint  string
	token     string
	publicURL string
	client    *http.Client
}

// NewHTTPRemote creates a remote storage client from configuration.
func NewHTTPRemote(cfg config.RemoteStorageConfig) *HTTPRemote {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.Endpoint
	}
	return &HTTPRemote{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		token:     cfg.Token,
		publicURL: strings.TrimRight(publicURL, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

// Save uploads the blob with a single PUT.
func (r *HTTPRemote) Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.endpoint+"/"+key, body)
	if err != nil {
		return "", err
	}
	if size > 0 {
		req.ContentLength = size
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("remote storage upload failed: %s", resp.Status)
	}
	return r.publicURL + "/" + key, nil
}

// Delete removes the blob; 404 responses are treated as success.
func (r *HTTPRemote) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.endpoint+"/"+key, nil)
	if err != nil {
		return err
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote storage delete failed: %s", resp.Status)
	}
	return nil
}
