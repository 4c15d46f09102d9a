package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthregistry/internal/registry/models"
	"healthregistry/internal/transport/http/shared"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/requestcontext"
)

//go:generate mockgen -source=handlers_enrollments.go -destination=mocks/enrollment_mocks.go -package=mocks EnrollmentService

// EnrollmentService is the enrollment boundary consumed by this handler.
type EnrollmentService interface {
	Enroll(ctx context.Context, req models.EnrollmentRequest) (*models.EnrollmentResult, error)
}

// EnrollmentHandler serves the doctor-gated enrollment endpoint.
type EnrollmentHandler struct {
	enrollments EnrollmentService
	logger      *slog.Logger
}

func NewEnrollmentHandler(enrollments EnrollmentService, logger *slog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, logger: logger}
}

// Register wires the enrollment route behind the role guard.
func (h *EnrollmentHandler) Register(r chi.Router, guard func(http.Handler) http.Handler) {
	r.With(guard).Post("/enrollments/", h.handleEnroll)
}

func (h *EnrollmentHandler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.EnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.enrollments.Enroll(ctx, req)
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to enroll client",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}
