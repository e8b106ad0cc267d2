package public

import "github.com/veltrachem-web/internal/provider"

// Handler serves the visitor-facing pages and JSON endpoints.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
