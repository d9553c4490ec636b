package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader carries the request ID on both requests and responses
const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an ID, honoring one supplied by the client.
// The ID is stored in the context and echoed on the response for correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), requestID)))
	})
}
