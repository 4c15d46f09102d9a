package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"healthregistry/internal/auth/credentials"
	authmodels "healthregistry/internal/auth/models"
	authservice "healthregistry/internal/auth/service"
	jwttoken "healthregistry/internal/jwt_token"
	"healthregistry/internal/platform/config"
	"healthregistry/internal/platform/httpserver"
	"healthregistry/internal/platform/logger"
	"healthregistry/internal/platform/metrics"
	"healthregistry/internal/platform/middleware"
	registryservice "healthregistry/internal/registry/service"
	clientstore "healthregistry/internal/registry/store/client"
	programstore "healthregistry/internal/registry/store/program"
	httptransport "healthregistry/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	creds, err := credentials.NewInMemory(credentials.Seed{
		Username: cfg.SeedUsername,
		FullName: "Dr. John Doe",
		Password: cfg.SeedPassword,
		Role:     authmodels.RoleDoctor,
	})
	if err != nil {
		log.Error("failed to seed credential store", "error", err)
		os.Exit(1)
	}

	tokens := jwttoken.NewJWTService(cfg.JWTSigningKey, "health-registry")
	authSvc := authservice.NewService(creds, tokens, cfg.AccessTokenTTL, log, m)

	registrySvc := registryservice.NewService(programstore.New(), clientstore.New(), log, m)

	guard := middleware.RequireRole(authSvc, authmodels.RoleDoctor, log)
	router := httptransport.NewRouter(
		log,
		guard,
		httptransport.NewAuthHandler(authSvc, log),
		httptransport.NewProgramHandler(registrySvc, log),
		httptransport.NewClientHandler(registrySvc, log),
		httptransport.NewEnrollmentHandler(registrySvc, log),
		reg,
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting health registry", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
