package program

import (
	"context"
	"fmt"
	"sync"
	"time"

	"healthregistry/internal/registry/models"
	"healthregistry/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return a wrapped sentinel.ErrNotFound when the requested entity does not exist
// - Return nil for successful operations
// InMemoryStore keeps health programs in process memory. Ids are assigned
// from a monotonically increasing counter starting at 1, under the write
// lock, so two programs can never share an id.
type InMemoryStore struct {
	mu       sync.RWMutex
	nextID   int
	programs map[int]*models.HealthProgram
	order    []int
}

// New constructs an empty in-memory program store.
func New() *InMemoryStore {
	return &InMemoryStore{
		nextID:   1,
		programs: make(map[int]*models.HealthProgram),
	}
}

// Create assigns the next id and stores the record. Name uniqueness is not
// enforced.
func (s *InMemoryStore) Create(_ context.Context, name, description string) (*models.HealthProgram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &models.HealthProgram{
		ID:          s.nextID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	s.programs[record.ID] = record
	s.order = append(s.order, record.ID)
	s.nextID++

	copied := *record
	return &copied, nil
}

// List returns all programs in insertion order.
func (s *InMemoryStore) List(_ context.Context) ([]*models.HealthProgram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.HealthProgram, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.programs[id]
		out = append(out, &copied)
	}
	return out, nil
}

// Find returns the program with the given id.
func (s *InMemoryStore) Find(_ context.Context, id int) (*models.HealthProgram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.programs[id]
	if !ok {
		return nil, fmt.Errorf("program %d: %w", id, sentinel.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}
