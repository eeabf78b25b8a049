package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/diary"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
)

type DiaryServiceImpl struct {
	repo         diary.DiaryRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewDiaryService(repo diary.DiaryRepository, employeeRepo employee.EmployeeRepository) diary.DiaryService {
	return &DiaryServiceImpl{
		repo:         repo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Upsert implements diary.DiaryService.
func (s *DiaryServiceImpl) Upsert(ctx context.Context, req diary.UpsertEntryRequest) (diary.Entry, error) {
	if err := req.Validate(); err != nil {
		return diary.Entry{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return diary.Entry{}, err
	}

	tasks := req.Tasks
	if tasks == nil {
		tasks = []diary.Task{}
	}

	entry := diary.Entry{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         req.Date,
		Tasks:        tasks,
		UpdatedAt:    s.now(),
	}

	saved, err := s.repo.Upsert(ctx, entry)
	if err != nil {
		return diary.Entry{}, fmt.Errorf("failed to save diary entry: %w", err)
	}
	return saved, nil
}

// Get implements diary.DiaryService.
func (s *DiaryServiceImpl) Get(ctx context.Context, employeeID string, date string) (*diary.Entry, error) {
	return s.repo.GetByEmployeeAndDate(ctx, employeeID, date)
}

// List implements diary.DiaryService.
func (s *DiaryServiceImpl) List(ctx context.Context) ([]diary.Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}
	if entries == nil {
		entries = []diary.Entry{}
	}
	return entries, nil
}
