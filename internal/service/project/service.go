package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	repo         project.ProjectRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewProjectService(repo project.ProjectRepository, employeeRepo employee.EmployeeRepository) project.ProjectService {
	return &ProjectServiceImpl{
		repo:         repo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return project.Project{}, err
	}

	proj := project.Project{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		ProjectName:  req.ProjectName,
		Description:  req.Description,
		Status:       project.Status(req.Status),
		FileName:     req.FileName,
		CreatedAt:    s.now(),
	}

	created, err := s.repo.Create(ctx, proj)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, employeeID string, req project.UpdateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	proj, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if proj.EmployeeID != employeeID {
		return project.Project{}, project.ErrNotProjectOwner
	}

	if req.ProjectName != nil {
		proj.ProjectName = *req.ProjectName
	}
	if req.Description != nil {
		proj.Description = *req.Description
	}
	if req.Status != nil {
		proj.Status = project.Status(*req.Status)
	}
	if req.FileName != nil {
		proj.FileName = req.FileName
	}

	if err := s.repo.Update(ctx, proj); err != nil {
		return project.Project{}, err
	}
	return proj, nil
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string, employeeID string) error {
	proj, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if proj.EmployeeID != employeeID {
		return project.ErrNotProjectOwner
	}
	return s.repo.Delete(ctx, id)
}

// ListByEmployee implements project.ProjectService.
func (s *ProjectServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	projects, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return projects, nil
}
