package employee

import "context"

// EmployeeService defines business logic for employee records
type EmployeeService interface {
	// List returns all employees
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Create adds a new employee (admin)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update edits an employee record (admin)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UpdateAvatar stores an uploaded avatar image and records its URL
	UpdateAvatar(ctx context.Context, req UpdateAvatarRequest) (EmployeeResponse, error)

	// Delete removes an employee and cascades their attendance, leave and diary rows (admin)
	Delete(ctx context.Context, id string) error

	// ClearAll wipes all employees and their dependent rows (admin)
	ClearAll(ctx context.Context) error
}
