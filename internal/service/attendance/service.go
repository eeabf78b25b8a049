package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/settings"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	repo         attendance.AttendanceRepository
	employeeRepo employee.EmployeeRepository
	settingsRepo settings.SettingsRepository
	now          func() time.Time
}

func NewAttendanceService(
	repo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		repo:         repo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// ClockIn implements attendance.AttendanceService. The geofence check runs
// before any lookup of today's record so a distant employee always gets the
// radius error, clocked in already or not.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockResponse{}, err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to load office settings: %w", err)
	}

	distance := utils.HaversineDistance(
		req.Latitude, req.Longitude,
		cfg.OfficeLocation.Latitude, cfg.OfficeLocation.Longitude,
	)
	if distance > float64(cfg.ClockInRadius) {
		return attendance.ClockResponse{}, &attendance.OutsideRadiusError{
			RadiusMeters:   cfg.ClockInRadius,
			DistanceMeters: int(math.Round(distance)),
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	now := s.now()
	today := now.Format("2006-01-02")
	clockTime := now.Format("15:04:05")

	existing, err := s.repo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	if existing != nil {
		if existing.ClockIn != nil {
			return attendance.ClockResponse{}, attendance.ErrAlreadyClockedIn
		}
		// A row without clock times exists when leave was approved for today
		// or the absence job ran; clocking in takes the day over.
		existing.ClockIn = &clockTime
		existing.Status = attendance.StatusPresent
		if err := s.repo.Update(ctx, *existing); err != nil {
			return attendance.ClockResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		return attendance.ClockResponse{Time: clockTime}, nil
	}

	_, err = s.repo.Create(ctx, attendance.Attendance{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         today,
		ClockIn:      &clockTime,
		Status:       attendance.StatusPresent,
	})
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return attendance.ClockResponse{Time: clockTime}, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	existing, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing == nil || existing.ClockIn == nil {
		return attendance.ClockResponse{}, attendance.ErrNotClockedIn
	}
	if existing.ClockOut != nil {
		return attendance.ClockResponse{}, attendance.ErrAlreadyClockedOut
	}

	clockTime := now.Format("15:04:05")
	existing.ClockOut = &clockTime
	if err := s.repo.Update(ctx, *existing); err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return attendance.ClockResponse{Time: clockTime}, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		out = append(out, attendance.ToResponse(att))
	}
	return out
}
