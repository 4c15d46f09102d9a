package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"healthregistry/internal/registry/models"
	"healthregistry/internal/transport/http/shared"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/requestcontext"
)

//go:generate mockgen -source=handlers_programs.go -destination=mocks/program_mocks.go -package=mocks ProgramService

// ProgramService is the program registry boundary consumed by this handler.
type ProgramService interface {
	CreateProgram(ctx context.Context, req models.CreateProgramRequest) (*models.HealthProgram, error)
	ListPrograms(ctx context.Context) ([]*models.HealthProgram, error)
}

// ProgramHandler serves the program endpoints. Creation is doctor-gated;
// listing is open.
type ProgramHandler struct {
	programs ProgramService
	logger   *slog.Logger
}

func NewProgramHandler(programs ProgramService, logger *slog.Logger) *ProgramHandler {
	return &ProgramHandler{programs: programs, logger: logger}
}

// Register wires the program routes, applying the role guard to the write.
func (h *ProgramHandler) Register(r chi.Router, guard func(http.Handler) http.Handler) {
	r.With(guard).Post("/programs/", h.handleCreate)
	r.Get("/programs/", h.handleList)
}

func (h *ProgramHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if !govalidator.StringLength(req.Name, "1", "255") {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "name is required"))
		return
	}

	record, err := h.programs.CreateProgram(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create program",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *ProgramHandler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.programs.ListPrograms(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, records)
}
