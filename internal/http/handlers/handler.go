package handlers

import "github.com/compravenda/api/internal/provider"

// Handler is the storefront API handler entry point.
type Handler struct {
	*provider.Container
}

// New creates the handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
