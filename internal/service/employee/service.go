package employee

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	repo        employee.EmployeeRepository
	fileService file.FileService
}

func NewEmployeeService(repo employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		repo:        repo,
		fileService: fileService,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, employee.ToResponse(emp))
	}
	return out, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Username:     req.Username,
		Position:     req.Position,
		Salary:       req.Salary,
		Avatar:       placeholderAvatar(req.Name),
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Username != nil {
		emp.Username = *req.Username
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// UpdateAvatar implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateAvatar(ctx context.Context, req employee.UpdateAvatarRequest) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	avatarURL, err := s.fileService.UploadAvatar(ctx, emp.ID, req.File, req.Filename)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Avatar = avatarURL
	if err := s.repo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ClearAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ClearAll(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// placeholderAvatar builds the placeholder image URL shown until the employee
// uploads a real photo.
func placeholderAvatar(name string) string {
	initial := "?"
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		initial = strings.ToUpper(trimmed[:1])
	}
	return fmt.Sprintf("https://placehold.co/100x100.png?text=%s", url.QueryEscape(initial))
}
