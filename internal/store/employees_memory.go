package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/johnwards/hrdash/internal/domain"
)

// MemoryEmployeeStore keeps employees in process memory. Records are copied
// on the way in and on the way out, so a snapshot taken by All is never
// affected by later writes.
type MemoryEmployeeStore struct {
	mu        sync.RWMutex
	employees []*domain.Employee
	byID      map[string]int
	nextID    int
}

// NewMemoryEmployeeStore creates an empty in-memory store.
func NewMemoryEmployeeStore() *MemoryEmployeeStore {
	return &MemoryEmployeeStore{
		byID:   make(map[string]int),
		nextID: 1,
	}
}

// Create appends a copy of e.
func (s *MemoryEmployeeStore) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := clone(e)
	stored.ID = strconv.Itoa(s.nextID)
	s.nextID++
	if stored.CreatedAt == "" {
		stored.CreatedAt = now()
	}

	s.byID[stored.ID] = len(s.employees)
	s.employees = append(s.employees, stored)
	return clone(stored), nil
}

// Get returns a copy of the employee with the given ID.
func (s *MemoryEmployeeStore) Get(_ context.Context, id string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(s.employees[i]), nil
}

// All returns copies of every employee in insertion order.
func (s *MemoryEmployeeStore) All(_ context.Context) ([]*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Employee, len(s.employees))
	for i, e := range s.employees {
		out[i] = clone(e)
	}
	return out, nil
}

// Count returns the number of stored employees.
func (s *MemoryEmployeeStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees), nil
}

// Reset drops every employee.
func (s *MemoryEmployeeStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = nil
	s.byID = make(map[string]int)
	s.nextID = 1
	return nil
}
