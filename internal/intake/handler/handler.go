package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodbridge/internal/intake/models"
	"foodbridge/pkg/platform/httputil"
	"foodbridge/pkg/requestcontext"
)

// Service defines the interface for custom request intake.
type Service interface {
	Submit(ctx context.Context, req models.CustomRequest) error
}

// Handler wires the intake endpoint to the intake service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an intake handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts intake endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/submit_custom_request", h.HandleSubmit)
}

// HandleSubmit handles POST /submit_custom_request requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Submit(ctx, req.ToRequest()); err != nil {
		h.logger.ErrorContext(ctx, "custom request submission failed",
			"request_id", requestID,
			"reciever_id", req.RecieverID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Custom request submitted successfully!",
	})
}
