package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, proj Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Update(ctx context.Context, proj Project) error
	Delete(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Project, error)
}
