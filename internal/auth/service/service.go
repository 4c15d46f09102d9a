// Package service implements login, token resolution, and the role gate used
// by the write endpoints.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"healthregistry/internal/auth/credentials"
	"healthregistry/internal/auth/models"
	jwttoken "healthregistry/internal/jwt_token"
	"healthregistry/internal/platform/metrics"
	dErrors "healthregistry/pkg/domain-errors"
)

// TokenService is the signing boundary so tests can swap key or clock
// behavior via a different JWT service instance.
type TokenService interface {
	GenerateAccessToken(subject string, expiresIn time.Duration) (string, error)
	ValidateToken(tokenString string) (*jwttoken.Claims, error)
}

// Service authenticates credentials and resolves bearer tokens to users.
type Service struct {
	creds    credentials.Store
	tokens   TokenService
	tokenTTL time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewService constructs the auth service. metrics may be nil in tests.
func NewService(
	creds credentials.Store,
	tokens TokenService,
	tokenTTL time.Duration,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		creds:    creds,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
		metrics:  m,
	}
}

// Login verifies the credentials and issues an access token. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*models.TokenResult, error) {
	user, err := s.creds.Lookup(ctx, username)
	if err != nil {
		s.logger.InfoContext(ctx, "login attempt for unknown username", "username", username)
		return nil, dErrors.New(dErrors.CodeBadRequest, "incorrect username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.InfoContext(ctx, "login failed with wrong password", "username", username)
		return nil, dErrors.New(dErrors.CodeBadRequest, "incorrect username or password")
	}

	token, err := s.tokens.GenerateAccessToken(user.Username, s.tokenTTL)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sign access token", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not issue token")
	}

	if s.metrics != nil {
		s.metrics.IncrementTokensIssued()
	}
	s.logger.InfoContext(ctx, "user logged in", "username", user.Username)

	return &models.TokenResult{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
	}, nil
}

// ResolveToken validates the token and resolves its subject against the
// credential store. A subject that no longer resolves is treated the same as
// an invalid token.
func (s *Service) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.creds.Lookup(ctx, claims.Subject)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "could not validate credentials")
	}
	return user, nil
}

// RequireRole resolves the token and enforces the role requirement.
func (s *Service) RequireRole(ctx context.Context, token, role string) (*models.User, error) {
	user, err := s.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, dErrors.New(dErrors.CodeForbidden, "not authorized")
	}
	return user, nil
}
