package database

import "context"

// EmployeeReader provides read-only access to registered employees.
type EmployeeReader interface {
	// Get retrieves an employee by exact name, returns nil if not found
	Get(ctx context.Context, name string) (*StoredEmployee, error)
	// GetAll returns all employees ordered by registration (insertion) order
	GetAll(ctx context.Context) ([]StoredEmployee, error)
	// Search returns employees whose normalized name contains the normalized query
	Search(ctx context.Context, query string) ([]StoredEmployee, error)
	// Count returns the total number of registered employees
	Count(ctx context.Context) (int, error)
}

// EmployeeWriter provides write access to registered employees.
type EmployeeWriter interface {
	EmployeeReader

	// Upsert inserts or replaces the record for name. Re-registering an
	// existing name overwrites it in place; there is no duplicate-name error.
	Upsert(ctx context.Context, name string, encoding []float32, image []byte) error

	// Delete removes the record for name. Deleting an absent name is a no-op;
	// the returned bool reports whether a record was actually removed.
	Delete(ctx context.Context, name string) (bool, error)
}
