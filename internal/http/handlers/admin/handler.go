package admin

import "github.com/glowderma/glowderma/internal/provider"

// Handler serves the admin console API.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
