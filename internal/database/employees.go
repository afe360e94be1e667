package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ansnew/facetrack/internal/facematch"
)

// EmployeeRepository provides SQLite-backed employee storage.
type EmployeeRepository struct {
	db *DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Upsert inserts or replaces the record for name. The ON CONFLICT form keeps
// the original row id, so registration order survives re-registration.
func (r *EmployeeRepository) Upsert(ctx context.Context, name string, encoding []float32, image []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO employees (name, encoding, image)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET encoding = excluded.encoding, image = excluded.image
	`, name, EncodeVector(encoding), image)
	if err != nil {
		return fmt.Errorf("upsert employee %q: %w", name, err)
	}
	return nil
}

// Get retrieves an employee by exact name. Returns nil when absent.
func (r *EmployeeRepository) Get(ctx context.Context, name string) (*StoredEmployee, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, encoding, image, created_at
		FROM employees
		WHERE name = ?
	`, name)

	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get employee %q: %w", name, err)
	}
	return emp, nil
}

// GetAll returns all employees in registration order.
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]StoredEmployee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, encoding, image, created_at
		FROM employees
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Search returns employees whose normalized name contains the normalized
// query. SQLite has no unaccent, so diacritics-insensitive filtering happens
// in Go over the full (small) employee set.
func (r *EmployeeRepository) Search(ctx context.Context, query string) ([]StoredEmployee, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	normalized := facematch.NormalizeName(query)
	if normalized == "" {
		return all, nil
	}

	var matched []StoredEmployee
	for _, emp := range all {
		if strings.Contains(facematch.NormalizeName(emp.Name), normalized) {
			matched = append(matched, emp)
		}
	}
	return matched, nil
}

// Count returns the total number of registered employees.
func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

// Delete removes the record for name. Absent names are a no-op.
func (r *EmployeeRepository) Delete(ctx context.Context, name string) (bool, error) {
	result, err := r.db.Exec(ctx, "DELETE FROM employees WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("delete employee %q: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete employee %q: %w", name, err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*StoredEmployee, error) {
	var emp StoredEmployee
	var encodingBytes []byte

	if err := row.Scan(&emp.ID, &emp.Name, &encodingBytes, &emp.Image, &emp.CreatedAt); err != nil {
		return nil, err
	}

	encoding, err := DecodeVector(encodingBytes)
	if err != nil {
		return nil, fmt.Errorf("decode encoding for %q: %w", emp.Name, err)
	}
	emp.Encoding = encoding

	return &emp, nil
}

func scanEmployees(rows *sql.Rows) ([]StoredEmployee, error) {
	var employees []StoredEmployee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}
