// Package mock provides an in-memory implementation of the database
// interfaces for testing.
package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/ansnew/facetrack/internal/database"
	"github.com/ansnew/facetrack/internal/facematch"
)

// EmployeeStore is an in-memory implementation of database.EmployeeWriter.
type EmployeeStore struct {
	mu        sync.RWMutex
	order     []string
	employees map[string]*database.StoredEmployee
	nextID    int64

	// Error injection
	UpsertError error
	GetError    error
	GetAllError error
	SearchError error
	CountError  error
	DeleteError error
}

// NewEmployeeStore creates a new in-memory employee store.
func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{
		employees: make(map[string]*database.StoredEmployee),
		nextID:    1,
	}
}

// Upsert inserts or replaces a record, keeping the original id and order.
func (m *EmployeeStore) Upsert(ctx context.Context, name string, encoding []float32, image []byte) error {
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	enc := make([]float32, len(encoding))
	copy(enc, encoding)
	img := make([]byte, len(image))
	copy(img, image)

	if existing, ok := m.employees[name]; ok {
		existing.Encoding = enc
		existing.Image = img
		return nil
	}

	m.employees[name] = &database.StoredEmployee{
		ID:       m.nextID,
		Name:     name,
		Encoding: enc,
		Image:    img,
	}
	m.nextID++
	m.order = append(m.order, name)
	return nil
}

// Get retrieves a record by exact name, nil when absent.
func (m *EmployeeStore) Get(ctx context.Context, name string) (*database.StoredEmployee, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	emp, ok := m.employees[name]
	if !ok {
		return nil, nil
	}
	cp := *emp
	return &cp, nil
}

// GetAll returns all records in registration order.
func (m *EmployeeStore) GetAll(ctx context.Context) ([]database.StoredEmployee, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]database.StoredEmployee, 0, len(m.order))
	for _, name := range m.order {
		all = append(all, *m.employees[name])
	}
	return all, nil
}

// Search filters records by normalized name containment.
func (m *EmployeeStore) Search(ctx context.Context, query string) ([]database.StoredEmployee, error) {
	if m.SearchError != nil {
		return nil, m.SearchError
	}

	all, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	normalized := facematch.NormalizeName(query)
	if normalized == "" {
		return all, nil
	}

	var matched []database.StoredEmployee
	for _, emp := range all {
		if strings.Contains(facematch.NormalizeName(emp.Name), normalized) {
			matched = append(matched, emp)
		}
	}
	return matched, nil
}

// Count returns the number of records.
func (m *EmployeeStore) Count(ctx context.Context) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.employees), nil
}

// Delete removes a record; absent names are a no-op.
func (m *EmployeeStore) Delete(ctx context.Context, name string) (bool, error) {
	if m.DeleteError != nil {
		return false, m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[name]; !ok {
		return false, nil
	}
	delete(m.employees, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}
