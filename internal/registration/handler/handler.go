package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"foodbridge/internal/registration/models"
	"foodbridge/pkg/platform/httputil"
	"foodbridge/pkg/requestcontext"
)

// Service defines the interface for account provisioning.
type Service interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.RegisteredAccount, error)
}

// Handler wires the registration endpoint to the provisioning service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registration handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/register_user_with_ai", h.HandleRegister)
}

// HandleRegister handles POST /register_user_with_ai requests.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	account, err := h.service.Register(ctx, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "registration failed",
			"request_id", requestID,
			"email", req.Email,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration completed",
		"request_id", requestID,
		"user_id", account.UserID,
		"trust_level", account.TrustLevel,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromAccount(account))
}
