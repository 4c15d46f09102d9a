package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr           string
	JWTSigningKey  string
	AccessTokenTTL time.Duration
	SeedUsername   string
	SeedPassword   string
}

// DefaultAccessTokenTTL is the single token lifetime used everywhere. Keep
// one constant; issuing and login must never disagree about expiry.
const DefaultAccessTokenTTL = 30 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("HEALTH_REGISTRY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	tokenTTL := DefaultAccessTokenTTL
	if raw := os.Getenv("ACCESS_TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			tokenTTL = parsed
		}
	}

	seedUsername := os.Getenv("SEED_USERNAME")
	if seedUsername == "" {
		seedUsername = "doctor"
	}
	seedPassword := os.Getenv("SEED_PASSWORD")
	if seedPassword == "" {
		seedPassword = "password123"
	}

	return Server{
		Addr:           addr,
		JWTSigningKey:  jwtSigningKey,
		AccessTokenTTL: tokenTTL,
		SeedUsername:   seedUsername,
		SeedPassword:   seedPassword,
	}
}
