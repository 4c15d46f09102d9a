// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them; handlers and services read
// them without importing net/http.
package requestcontext

import (
	"context"

	"healthregistry/internal/auth/models"
)

// Context key types (unexported for encapsulation).
type (
	userKey      struct{}
	requestIDKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyUser      = userKey{}
	ContextKeyRequestID = requestIDKey{}
)

// User retrieves the authenticated user from the context. Returns nil when no
// auth middleware ran on the request.
func User(ctx context.Context) *models.User {
	if user, ok := ctx.Value(ContextKeyUser).(*models.User); ok {
		return user
	}
	return nil
}

// WithUser injects the authenticated user into the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, user)
}

// RequestID retrieves the request ID from the context, or "" when unset.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}
