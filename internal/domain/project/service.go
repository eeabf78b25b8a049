package project

import "context"

// ProjectService defines business logic for per-employee project tracking
type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)

	// Update edits a project; only the owning employee may do this
	Update(ctx context.Context, id string, employeeID string, req UpdateProjectRequest) (Project, error)

	// Delete removes a project; only the owning employee may do this
	Delete(ctx context.Context, id string, employeeID string) error

	ListByEmployee(ctx context.Context, employeeID string) ([]Project, error)
}
