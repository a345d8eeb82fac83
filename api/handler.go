package api

import "go.uber.org/zap"

// Handler carries the per-process collaborators of the route handlers.
// The database connection is per-request and comes from the gin context.
type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}
