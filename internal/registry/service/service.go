// Package service exposes the registry operations behind a single façade so
// the transport layer never touches stores directly.
package service

import (
	"context"
	"errors"
	"log/slog"

	"healthregistry/internal/platform/metrics"
	"healthregistry/internal/registry/models"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/platform/sentinel"
)

// ProgramStore is the program persistence boundary.
type ProgramStore interface {
	Create(ctx context.Context, name, description string) (*models.HealthProgram, error)
	List(ctx context.Context) ([]*models.HealthProgram, error)
	Find(ctx context.Context, id int) (*models.HealthProgram, error)
}

// ClientStore is the client persistence boundary.
type ClientStore interface {
	Create(ctx context.Context, req models.CreateClientRequest) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	Find(ctx context.Context, id int) (*models.Client, error)
	Search(ctx context.Context, query string) ([]*models.Client, error)
	AppendProgram(ctx context.Context, clientID, programID int) error
}

// Service wires the two registries together. Enrollment is the only operation
// that crosses them.
type Service struct {
	programs ProgramStore
	clients  ClientStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewService constructs the registry service. metrics may be nil in tests.
func NewService(programs ProgramStore, clients ClientStore, logger *slog.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		programs: programs,
		clients:  clients,
		logger:   logger,
		metrics:  m,
	}
}

// CreateProgram registers a new health program.
func (s *Service) CreateProgram(ctx context.Context, req models.CreateProgramRequest) (*models.HealthProgram, error) {
	record, err := s.programs.Create(ctx, req.Name, req.Description)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "create program")
	}
	if s.metrics != nil {
		s.metrics.IncrementProgramsCreated()
	}
	s.logger.InfoContext(ctx, "program created",
		"program_id", record.ID,
		"name", record.Name,
	)
	return record, nil
}

// ListPrograms returns every program in insertion order.
func (s *Service) ListPrograms(ctx context.Context) ([]*models.HealthProgram, error) {
	records, err := s.programs.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list programs")
	}
	return records, nil
}

// CreateClient registers a new client with an empty enrollment list.
func (s *Service) CreateClient(ctx context.Context, req models.CreateClientRequest) (*models.Client, error) {
	record, err := s.clients.Create(ctx, req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "create client")
	}
	if s.metrics != nil {
		s.metrics.IncrementClientsCreated()
	}
	s.logger.InfoContext(ctx, "client created",
		"client_id", record.ID,
	)
	return record, nil
}

// ListClients returns every client in insertion order.
func (s *Service) ListClients(ctx context.Context) ([]*models.Client, error) {
	records, err := s.clients.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list clients")
	}
	return records, nil
}

// GetClient returns the client with the given id.
func (s *Service) GetClient(ctx context.Context, id int) (*models.Client, error) {
	record, err := s.clients.Find(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "client not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "get client")
	}
	return record, nil
}

// SearchClients returns clients matching the query. The empty query matches
// everyone.
func (s *Service) SearchClients(ctx context.Context, query string) ([]*models.Client, error) {
	records, err := s.clients.Search(ctx, query)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "search clients")
	}
	return records, nil
}

// Enroll appends the program to the client's enrollment list after checking
// both ids resolve. Repeating an enrollment succeeds without changing state.
func (s *Service) Enroll(ctx context.Context, req models.EnrollmentRequest) (*models.EnrollmentResult, error) {
	if _, err := s.clients.Find(ctx, req.ClientID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "client not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "enroll client")
	}
	if _, err := s.programs.Find(ctx, req.ProgramID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "program not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "enroll client")
	}

	if err := s.clients.AppendProgram(ctx, req.ClientID, req.ProgramID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "client not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "enroll client")
	}

	if s.metrics != nil {
		s.metrics.IncrementEnrollmentsCompleted()
	}
	s.logger.InfoContext(ctx, "client enrolled",
		"client_id", req.ClientID,
		"program_id", req.ProgramID,
	)
	return &models.EnrollmentResult{Message: "Client enrolled successfully"}, nil
}
