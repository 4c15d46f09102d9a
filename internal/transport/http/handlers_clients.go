package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"healthregistry/internal/registry/models"
	"healthregistry/internal/transport/http/shared"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/requestcontext"
)

//go:generate mockgen -source=handlers_clients.go -destination=mocks/client_mocks.go -package=mocks ClientService

// ClientService is the client registry boundary consumed by this handler.
type ClientService interface {
	CreateClient(ctx context.Context, req models.CreateClientRequest) (*models.Client, error)
	ListClients(ctx context.Context) ([]*models.Client, error)
	GetClient(ctx context.Context, id int) (*models.Client, error)
	SearchClients(ctx context.Context, query string) ([]*models.Client, error)
}

// ClientHandler serves the client endpoints. Creation is doctor-gated; list,
// lookup, and search are open.
type ClientHandler struct {
	clients ClientService
	logger  *slog.Logger
}

func NewClientHandler(clients ClientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{clients: clients, logger: logger}
}

// Register wires the client routes, applying the role guard to the write.
// The search route is registered alongside the id route; chi keeps the static
// "search" segment from colliding with "{id}".
func (h *ClientHandler) Register(r chi.Router, guard func(http.Handler) http.Handler) {
	r.With(guard).Post("/clients/", h.handleCreate)
	r.Get("/clients/", h.handleList)
	r.Get("/clients/search/", h.handleSearch)
	r.Get("/clients/{id}", h.handleGet)
}

func (h *ClientHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := validateCreateClientRequest(req); err != nil {
		shared.WriteError(w, err)
		return
	}

	record, err := h.clients.CreateClient(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create client",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *ClientHandler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.clients.ListClients(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, records)
}

func (h *ClientHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "client id must be an integer"))
		return
	}

	record, err := h.clients.GetClient(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, record)
}

// handleSearch treats a missing query parameter as the empty query, which
// matches every client.
func (h *ClientHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	records, err := h.clients.SearchClients(r.Context(), query)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, records)
}

func validateCreateClientRequest(req models.CreateClientRequest) error {
	fields := map[string]string{
		"first_name":     req.FirstName,
		"last_name":      req.LastName,
		"date_of_birth":  req.DateOfBirth,
		"gender":         req.Gender,
		"contact_number": req.ContactNumber,
		"address":        req.Address,
	}
	for name, value := range fields {
		if !govalidator.StringLength(value, "1", "255") {
			return dErrors.New(dErrors.CodeInvalidInput, name+" is required")
		}
	}
	return nil
}
