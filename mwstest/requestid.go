package mwstest

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID carries the service-assigned request id.
const HeaderRequestID = "X-Mws-Request-Id"

// DefaultRequestID is the id stamped on responses when Config.RequestID is
// nil.
const DefaultRequestID = "d80c6c7b-f7c7-4fa7-bdd7-854711cb3bcc"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned to the request being served.
// Returns an empty string outside a Server handler.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// UUIDRequestID assigns a fresh UUID v4 to every request.
func UUIDRequestID(_ *http.Request) string {
	return uuid.New().String()
}

func fixedRequestID(_ *http.Request) string {
	return DefaultRequestID
}

// requestIDMiddleware assigns an id to every request, including rejected
// ones, and echoes it in the response header.
func requestIDMiddleware(generate func(*http.Request) string) func(http.Handler) http.Handler {
	if generate == nil {
		generate = fixedRequestID
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := generate(r)
			if id != "" {
				w.Header().Set(HeaderRequestID, id)
				r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
			}

			next.ServeHTTP(w, r)
		})
	}
}
