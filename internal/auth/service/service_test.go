package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"healthregistry/internal/auth/credentials"
	"healthregistry/internal/auth/models"
	jwttoken "healthregistry/internal/jwt_token"
	dErrors "healthregistry/pkg/domain-errors"
)

type AuthServiceSuite struct {
	suite.Suite
	svc *Service
	ctx context.Context
}

func (s *AuthServiceSuite) SetupTest() {
	creds, err := credentials.NewInMemory(
		credentials.Seed{Username: "doctor", FullName: "Dr. John Doe", Password: "password123", Role: models.RoleDoctor},
		credentials.Seed{Username: "reception", FullName: "Front Desk", Password: "frontdesk", Role: "receptionist"},
	)
	s.Require().NoError(err)

	tokens := jwttoken.NewJWTService("test-signing-key", "health-registry")
	s.svc = NewService(creds, tokens, 30*time.Minute, nil, nil)
	s.ctx = context.Background()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) TestLogin() {
	s.Run("valid credentials issue a bearer token", func() {
		result, err := s.svc.Login(s.ctx, "doctor", "password123")
		s.Require().NoError(err)
		s.Equal(models.TokenTypeBearer, result.TokenType)
		s.NotEmpty(result.AccessToken)
	})

	s.Run("wrong password fails with bad request", func() {
		_, err := s.svc.Login(s.ctx, "doctor", "wrong")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})

	s.Run("unknown username fails the same way as wrong password", func() {
		_, wrongPassword := s.svc.Login(s.ctx, "doctor", "wrong")
		_, unknownUser := s.svc.Login(s.ctx, "stranger", "password123")
		s.Require().Error(wrongPassword)
		s.Require().Error(unknownUser)
		s.Equal(wrongPassword.Error(), unknownUser.Error())
	})
}

func (s *AuthServiceSuite) TestResolveToken() {
	s.Run("resolves a fresh token to its user", func() {
		result, err := s.svc.Login(s.ctx, "doctor", "password123")
		s.Require().NoError(err)

		user, err := s.svc.ResolveToken(s.ctx, result.AccessToken)
		s.Require().NoError(err)
		s.Equal("doctor", user.Username)
		s.Equal(models.RoleDoctor, user.Role)
	})

	s.Run("rejects garbage tokens", func() {
		_, err := s.svc.ResolveToken(s.ctx, "not-a-token")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects expired tokens", func() {
		tokens := jwttoken.NewJWTService("test-signing-key", "health-registry")
		expired, err := tokens.GenerateAccessToken("doctor", -time.Minute)
		s.Require().NoError(err)

		_, err = s.svc.ResolveToken(s.ctx, expired)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects tokens whose subject has no credential entry", func() {
		tokens := jwttoken.NewJWTService("test-signing-key", "health-registry")
		orphan, err := tokens.GenerateAccessToken("ghost", time.Minute)
		s.Require().NoError(err)

		_, err = s.svc.ResolveToken(s.ctx, orphan)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})
}

func (s *AuthServiceSuite) TestRequireRole() {
	s.Run("doctor token passes the doctor gate", func() {
		result, err := s.svc.Login(s.ctx, "doctor", "password123")
		s.Require().NoError(err)

		user, err := s.svc.RequireRole(s.ctx, result.AccessToken, models.RoleDoctor)
		s.Require().NoError(err)
		s.Equal("doctor", user.Username)
	})

	s.Run("non-doctor token is forbidden", func() {
		result, err := s.svc.Login(s.ctx, "reception", "frontdesk")
		s.Require().NoError(err)

		_, err = s.svc.RequireRole(s.ctx, result.AccessToken, models.RoleDoctor)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeForbidden))
	})

	s.Run("invalid token is unauthorized, not forbidden", func() {
		_, err := s.svc.RequireRole(s.ctx, "bogus", models.RoleDoctor)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})
}
