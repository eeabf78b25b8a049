package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
)

// AttendanceJobs fills attendance gaps for days that have already passed.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees writes an Absent row for every employee who has no
// attendance record for yesterday and no approved leave covering it. Runs
// hourly and is idempotent: existing rows are never touched.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := j.now().AddDate(0, 0, -1).Format("2006-01-02")

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	leaves, err := j.leaveRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leave requests: %w", err)
	}

	onLeave := make(map[string]bool)
	for _, lr := range leaves {
		if lr.Status == leave.StatusApproved && lr.StartDate <= yesterday && yesterday <= lr.EndDate {
			onLeave[lr.EmployeeID] = true
		}
	}

	markedCount := 0
	for _, emp := range employees {
		if onLeave[emp.ID] {
			continue
		}

		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, yesterday)
		if err != nil {
			return fmt.Errorf("failed to check attendance for employee %s: %w", emp.ID, err)
		}
		if existing != nil {
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			ID:           uuid.NewString(),
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Date:         yesterday,
			Status:       attendance.StatusAbsent,
		})
		if err != nil {
			return fmt.Errorf("failed to mark employee %s absent: %w", emp.ID, err)
		}
		markedCount++
	}

	if markedCount > 0 {
		slog.Info("Cron: marked employees absent", "date", yesterday, "count", markedCount)
	}
	return nil
}
