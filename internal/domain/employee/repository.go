package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUsername(ctx context.Context, username string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee together with their attendance, leave request
	// and diary rows.
	Delete(ctx context.Context, id string) error

	// Clear wipes employees, attendance, leave requests and diary entries.
	Clear(ctx context.Context) error
}
