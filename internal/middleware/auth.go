package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/logging"
)

// UserEnsurer records a user the first time they authenticate.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, id, name, email string) error
}

// RequireUser rejects requests without a valid bearer token.
func RequireUser(verifier *auth.TokenVerifier, users UserEnsurer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			raw, ok := bearerToken(r)
			if !ok {
				common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthenticated), http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				logging.Debug("Rejected bearer token", "error", err.Error())
				common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthenticated), http.StatusUnauthorized)
				return
			}

			if err := users.EnsureUser(r.Context(), claims.UserID(), claims.Name(), claims.Email()); err != nil {
				logging.Error("Failed to record user", "user_id", claims.UserID(), "error", err.Error())
				common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeInternal), http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// OptionalUser attaches claims when a valid token is present and otherwise
// lets the request through anonymously.
func OptionalUser(verifier *auth.TokenVerifier, users UserEnsurer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				logging.Debug("Ignoring invalid bearer token", "error", err.Error())
				next.ServeHTTP(w, r)
				return
			}

			if err := users.EnsureUser(r.Context(), claims.UserID(), claims.Name(), claims.Email()); err != nil {
				logging.Warn("Failed to record user", "user_id", claims.UserID(), "error", err.Error())
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func withClaims(ctx context.Context, claims auth.UserClaims) context.Context {
	if meta := getRequestMeta(ctx); meta != nil {
		meta.UserID = claims.UserID()
	}
	return auth.SetUserClaims(ctx, claims)
}
