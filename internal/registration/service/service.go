package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodbridge/internal/registration/metrics"
	"foodbridge/internal/registration/models"
	"foodbridge/internal/trust"
	dErrors "foodbridge/pkg/domain-errors"
	"foodbridge/pkg/platform/sentinel"
	"foodbridge/pkg/requestcontext"
)

// Classifier assigns an advisory trust level to an organization profile.
// It never fails; a broken model yields the conservative default.
type Classifier interface {
	Classify(ctx context.Context, profile trust.OrganizationProfile) trust.Level
}

// IdentityProvider is the external auth service surface used by provisioning.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	DeleteUser(ctx context.Context, id string) error
}

// ProfileStore persists the profile record keyed by the identity id.
type ProfileStore interface {
	InsertProfile(ctx context.Context, row models.ProfileRow) error
}

// Service provisions accounts in two committed stages against independent
// external systems. There is no cross-system transaction: stage B failure is
// compensated by deleting the stage A identity so callers never observe a
// profile-less identity as success, and the systems converge on "neither".
type Service struct {
	classifier Classifier
	identities IdentityProvider
	profiles   ProfileStore
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(classifier Classifier, identities IdentityProvider, profiles ProfileStore, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		classifier: classifier,
		identities: identities,
		profiles:   profiles,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register classifies the profile, creates the identity (stage A), then
// persists the profile row (stage B). Classification cannot fail the
// operation; either provisioning stage aborts it with a stage-specific error.
func (s *Service) Register(ctx context.Context, input models.RegisterInput) (*models.RegisteredAccount, error) {
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()
	defer func() {
		s.metrics.ObserveRegisterLatency(time.Since(start))
	}()

	level := s.classifier.Classify(ctx, input.Profile)

	userID, err := s.identities.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "identity creation failed",
			"request_id", requestID,
			"error", err,
		)
		s.metrics.IncrementFailure("identity")
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(err, dErrors.CodeAuthProvisioning, "auth registration failed: email already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeAuthProvisioning, "auth registration failed")
	}

	row := models.ProfileRow{
		ID:          userID,
		Name:        input.Name,
		Email:       input.Email,
		Role:        input.Role,
		OrgName:     input.Profile.Name,
		OrgType:     input.Profile.OrgType,
		Location:    input.Profile.Location,
		Description: input.Profile.Description,
		DocURL:      input.Profile.DocURL,
		TrustLevel:  level,
		// The trust level is advisory metadata only; accounts are approved
		// unconditionally in this version.
		IsVerified:         true,
		VerificationStatus: "approved",
		ContactInfo:        input.ContactInfo,
	}
	if err := s.profiles.InsertProfile(ctx, row); err != nil {
		s.logger.ErrorContext(ctx, "profile persistence failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		s.metrics.IncrementFailure("profile")
		s.compensateIdentity(ctx, userID, requestID)
		return nil, dErrors.Wrap(err, dErrors.CodeProfileProvisioning, "profile persistence failed")
	}

	s.logger.InfoContext(ctx, "account registered",
		"request_id", requestID,
		"user_id", userID,
		"trust_level", level,
	)
	s.metrics.IncrementRegistered(string(level))

	return &models.RegisteredAccount{UserID: userID, TrustLevel: level}, nil
}

// compensateIdentity deletes the stage A identity after a stage B failure.
// A failed delete leaves an orphaned identity; that fact is logged and
// counted for reconciliation but does not change the caller-visible outcome.
func (s *Service) compensateIdentity(ctx context.Context, userID, requestID string) {
	if err := s.identities.DeleteUser(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "compensating identity delete failed, identity orphaned",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		s.metrics.IncrementOrphanedIdentity()
		return
	}
	s.logger.InfoContext(ctx, "identity rolled back after profile failure",
		"request_id", requestID,
		"user_id", userID,
	)
}
