package public

import "github.com/glowderma/glowderma/internal/provider"

// Handler serves the storefront and guest-facing API.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
