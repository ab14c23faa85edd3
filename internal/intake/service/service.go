package service

import (
	"context"
	"log/slog"

	"foodbridge/internal/intake/metrics"
	"foodbridge/internal/intake/models"
	dErrors "foodbridge/pkg/domain-errors"
	"foodbridge/pkg/requestcontext"
)

// RequestStore persists custom requests in the external store.
type RequestStore interface {
	InsertRequest(ctx context.Context, req models.CustomRequest) error
}

// Service handles intake of custom requests: one validated submission becomes
// one append-only record. No retry, no partial state.
type Service struct {
	requests RequestStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(requests RequestStore, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{requests: requests, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit writes the request as a single record. Any store failure surfaces as
// an intake storage error; a success response is only returned after the
// write committed upstream.
func (s *Service) Submit(ctx context.Context, req models.CustomRequest) error {
	requestID := requestcontext.RequestID(ctx)

	if err := s.requests.InsertRequest(ctx, req); err != nil {
		s.logger.ErrorContext(ctx, "custom request persistence failed",
			"request_id", requestID,
			"reciever_id", req.RecieverID,
			"error", err,
		)
		s.metrics.IncrementSubmission("storage_error")
		return dErrors.Wrap(err, dErrors.CodeIntakeStorage, "request submission failed")
	}

	s.logger.InfoContext(ctx, "custom request stored",
		"request_id", requestID,
		"reciever_id", req.RecieverID,
		"food_type", req.FoodType,
	)
	s.metrics.IncrementSubmission("stored")
	return nil
}
