package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"healthregistry/internal/auth/models"
	"healthregistry/internal/transport/http/shared"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/requestcontext"
)

// Gate resolves a bearer token and enforces a role requirement.
type Gate interface {
	RequireRole(ctx context.Context, token, role string) (*models.User, error)
}

// RequireRole guards a route with the role gate. Requests without a bearer
// token, with an invalid token, or with the wrong role never reach the
// handler. Read endpoints stay outside this middleware on purpose; only
// writes are gated.
func RequireRole(gate Gate, role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"))
				return
			}

			user, err := gate.RequireRole(ctx, token, role)
			if err != nil {
				logger.WarnContext(ctx, "access denied",
					"error", err.Error(),
					"request_id", requestID,
				)
				shared.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithUser(ctx, user)))
		})
	}
}
