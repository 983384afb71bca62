package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/scentdesk/concierge/internal/observability"
)

// RequestIDHeader carries the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a UUID to every request and stores it on the context so
// log lines can be correlated. An incoming header value is honored, letting
// proxies supply their own IDs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := observability.ContextWithRequestID(r.Context(), requestID)
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
