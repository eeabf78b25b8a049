package document

import (
	"context"
	"sort"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/project"
)

type projectRepositoryImpl struct {
	store *Store
}

// NewProjectRepository creates a new project repository backed by the store
func NewProjectRepository(store *Store) project.ProjectRepository {
	return &projectRepositoryImpl{store: store}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, proj project.Project) (project.Project, error) {
	err := r.store.Mutate(func(doc *Document) error {
		doc.Projects = append(doc.Projects, proj)
		return nil
	})
	if err != nil {
		return project.Project{}, err
	}
	return proj, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	var found project.Project
	err := r.store.View(func(doc *Document) error {
		for _, proj := range doc.Projects {
			if proj.ID == id {
				found = proj
				return nil
			}
		}
		return project.ErrProjectNotFound
	})
	return found, err
}

func (r *projectRepositoryImpl) Update(ctx context.Context, proj project.Project) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.Projects {
			if doc.Projects[i].ID == proj.ID {
				doc.Projects[i] = proj
				return nil
			}
		}
		return project.ErrProjectNotFound
	})
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.Projects {
			if doc.Projects[i].ID == id {
				doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
				return nil
			}
		}
		return project.ErrProjectNotFound
	})
}

func (r *projectRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	var out []project.Project
	err := r.store.View(func(doc *Document) error {
		for _, proj := range doc.Projects {
			if proj.EmployeeID == employeeID {
				out = append(out, proj)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
