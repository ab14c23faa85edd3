// Package intake exposes custom request submission: validate, persist once,
// confirm.
package intake

import (
	"log/slog"

	"foodbridge/internal/intake/handler"
	"foodbridge/internal/intake/metrics"
	"foodbridge/internal/intake/service"
	"foodbridge/internal/intake/store"
)

// Service handles custom request intake.
type Service = service.Service

// Handler wires HTTP endpoints to the intake service.
type Handler = handler.Handler

// Metrics holds intake observability counters.
type Metrics = metrics.Metrics

// RequestStore adapts the Supabase REST client to the request port.
type RequestStore = store.RequestStore

// NewService constructs the intake service with required dependencies.
func NewService(requests service.RequestStore, logger *slog.Logger, opts ...service.Option) *Service {
	return service.New(requests, logger, opts...)
}

// NewHandler constructs an HTTP handler for the intake endpoint.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
