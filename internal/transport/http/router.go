// Package httptransport is the thin HTTP layer. It decodes requests,
// delegates to domain services, and serializes results; business logic lives
// in the services.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"healthregistry/internal/platform/middleware"
	"healthregistry/internal/transport/http/shared"
)

// NewRouter wires all public endpoints. Only the write endpoints pass through
// the role guard; the read endpoints are intentionally open, preserving the
// existing API contract.
func NewRouter(
	logger *slog.Logger,
	guard func(http.Handler) http.Handler,
	auth *AuthHandler,
	programs *ProgramHandler,
	clients *ClientHandler,
	enrollments *EnrollmentHandler,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	r.Get("/", handleLanding)
	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	auth.Register(r)
	programs.Register(r, guard)
	clients.Register(r, guard)
	enrollments.Register(r, guard)

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
