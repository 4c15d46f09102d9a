package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"healthregistry/internal/registry/models"
	"healthregistry/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return a wrapped sentinel.ErrNotFound when the requested entity does not exist
// - Return nil for successful operations
// InMemoryStore keeps client records in process memory with monotonic id
// assignment starting at 1. All reads hand out deep copies so a caller can
// never observe a concurrent enrollment append mid-write.
type InMemoryStore struct {
	mu      sync.RWMutex
	nextID  int
	clients map[int]*models.Client
	order   []int
}

// New constructs an empty in-memory client store.
func New() *InMemoryStore {
	return &InMemoryStore{
		nextID:  1,
		clients: make(map[int]*models.Client),
	}
}

// Create assigns the next id and stores the record with an empty enrollment
// list.
func (s *InMemoryStore) Create(_ context.Context, req models.CreateClientRequest) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &models.Client{
		ID:               s.nextID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		ContactNumber:    req.ContactNumber,
		Address:          req.Address,
		EnrolledPrograms: []int{},
		CreatedAt:        time.Now().UTC(),
	}
	s.clients[record.ID] = record
	s.order = append(s.order, record.ID)
	s.nextID++

	return clone(record), nil
}

// List returns all clients in insertion order.
func (s *InMemoryStore) List(_ context.Context) ([]*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.clients[id]))
	}
	return out, nil
}

// Find returns the client with the given id.
func (s *InMemoryStore) Find(_ context.Context, id int) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %d: %w", id, sentinel.ErrNotFound)
	}
	return clone(record), nil
}

// Search returns clients whose first or last name contains the query
// case-insensitively, or whose contact number contains it verbatim. The empty
// query matches everything. Results follow insertion order.
func (s *InMemoryStore) Search(_ context.Context, query string) ([]*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowered := strings.ToLower(query)
	out := []*models.Client{}
	for _, id := range s.order {
		record := s.clients[id]
		if strings.Contains(strings.ToLower(record.FirstName), lowered) ||
			strings.Contains(strings.ToLower(record.LastName), lowered) ||
			strings.Contains(record.ContactNumber, query) {
			out = append(out, clone(record))
		}
	}
	return out, nil
}

// AppendProgram appends programID to the client's enrollment list. Appending
// an id already present is a no-op, keeping the operation idempotent.
func (s *InMemoryStore) AppendProgram(_ context.Context, clientID, programID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.clients[clientID]
	if !ok {
		return fmt.Errorf("client %d: %w", clientID, sentinel.ErrNotFound)
	}
	for _, enrolled := range record.EnrolledPrograms {
		if enrolled == programID {
			return nil
		}
	}
	record.EnrolledPrograms = append(record.EnrolledPrograms, programID)
	return nil
}

// clone deep-copies a record, including the enrollment slice, so stored state
// is never aliased outside the lock.
func clone(record *models.Client) *models.Client {
	copied := *record
	copied.EnrolledPrograms = append([]int{}, record.EnrolledPrograms...)
	return &copied
}
