package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthregistry/internal/auth/models"
	"healthregistry/internal/transport/http/shared"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/requestcontext"
)

//go:generate mockgen -source=handlers_auth.go -destination=mocks/auth_mocks.go -package=mocks AuthService

// AuthService is the login boundary consumed by the token endpoint.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.TokenResult, error)
}

// AuthHandler serves the token endpoint.
type AuthHandler struct {
	auth   AuthService
	logger *slog.Logger
}

func NewAuthHandler(auth AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register wires the auth routes.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/token", h.handleLogin)
}

// handleLogin exchanges form credentials for a bearer token. The body is
// form-encoded, not JSON, matching the OAuth2 password-style login shape.
func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid form body"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "username and password are required"))
		return
	}

	result, err := h.auth.Login(ctx, username, password)
	if err != nil {
		h.logger.WarnContext(ctx, "login rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}
