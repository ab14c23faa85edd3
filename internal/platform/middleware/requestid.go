package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"foodbridge/pkg/requestcontext"
)

const requestIDHeader = "X-Request-Id"

// RequestID mints a correlation ID for every request and exposes it through
// the context and the response header. An inbound X-Request-Id is trusted as-is
// so callers can correlate across services.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = "req_" + uuid.NewString()
		}
		ctx := requestcontext.WithRequestID(r.Context(), id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
