// Package registration exposes account provisioning: trust classification
// followed by two-stage identity and profile creation.
package registration

import (
	"log/slog"

	"foodbridge/internal/registration/handler"
	"foodbridge/internal/registration/metrics"
	"foodbridge/internal/registration/service"
	"foodbridge/internal/registration/store"
)

// Service orchestrates the two-stage provisioning saga.
type Service = service.Service

// Handler wires HTTP endpoints to the registration service.
type Handler = handler.Handler

// Metrics holds registration observability counters.
type Metrics = metrics.Metrics

// ProfileStore adapts the Supabase REST client to the profile port.
type ProfileStore = store.ProfileStore

// NewService constructs the registration service with required dependencies.
func NewService(classifier service.Classifier, identities service.IdentityProvider, profiles service.ProfileStore, logger *slog.Logger, opts ...service.Option) *Service {
	return service.New(classifier, identities, profiles, logger, opts...)
}

// NewHandler constructs an HTTP handler for the registration endpoint.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
