package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const requestMetaKey contextKey = "request_meta"

// requestMeta is filled in as the request moves down the chain so the
// outer middleware can log who made it once it completes.
type requestMeta struct {
	ID     string
	UserID string
}

func getRequestMeta(ctx context.Context) *requestMeta {
	meta, _ := ctx.Value(requestMetaKey).(*requestMeta)
	return meta
}

// GetRequestID returns the id assigned by RequestIDMiddleware, or "".
func GetRequestID(ctx context.Context) string {
	if meta := getRequestMeta(ctx); meta != nil {
		return meta.ID
	}
	return ""
}

// RequestIDMiddleware keeps an incoming X-Request-ID or assigns a new one.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestMetaKey, &requestMeta{ID: requestID})
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
