package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/email"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/sse"
)

type LeaveServiceImpl struct {
	repo           leave.LeaveRequestRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	emailService   email.EmailService
	events         *sse.Hub
}

func NewLeaveService(
	repo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	emailService email.EmailService,
	events *sse.Hub,
) leave.LeaveService {
	return &LeaveServiceImpl{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		emailService:   emailService,
		events:         events,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if leave.LeaveType(req.LeaveType) == leave.LeaveTypePaid {
		if err := s.checkPaidQuota(ctx, req.EmployeeID, req.StartDate); err != nil {
			return leave.LeaveRequestResponse{}, err
		}
	}

	created, err := s.repo.Create(ctx, leave.LeaveRequest{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		LeaveType:    leave.LeaveType(req.LeaveType),
		Status:       leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.ToResponse(created), nil
}

// checkPaidQuota enforces at most one Paid request (Pending or Approved) per
// start-date calendar month. Rejected requests give the month back.
func (s *LeaveServiceImpl) checkPaidQuota(ctx context.Context, employeeID, startDate string) error {
	newStart, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return leave.ErrInvalidDateRange
	}

	existing, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to list leave requests: %w", err)
	}

	for _, lr := range existing {
		if lr.LeaveType != leave.LeaveTypePaid {
			continue
		}
		if lr.Status != leave.StatusPending && lr.Status != leave.StatusApproved {
			continue
		}
		start, err := time.Parse("2006-01-02", lr.StartDate)
		if err != nil {
			continue
		}
		if start.Month() == newStart.Month() && start.Year() == newStart.Year() {
			return leave.ErrPaidLeaveQuotaExceeded
		}
	}
	return nil
}

// UpdateStatus implements leave.LeaveService. The status is set regardless of
// the current one; re-deciding a decided request overwrites the decision.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	request.Status = leave.Status(req.Status)

	if request.Status == leave.StatusApproved {
		if err := s.backfillAttendance(ctx, request); err != nil {
			return err
		}
		if request.LeaveType == leave.LeaveTypeUnpaid && req.DeductionAmount != nil && *req.DeductionAmount > 0 {
			request.DeductionAmount = req.DeductionAmount
		}
	}

	if err := s.repo.Update(ctx, request); err != nil {
		return err
	}

	s.notifyDecision(ctx, request)
	return nil
}

// backfillAttendance marks every day of the approved range On Leave. Existing
// rows keep their clock times; only the status flips.
func (s *LeaveServiceImpl) backfillAttendance(ctx context.Context, request leave.LeaveRequest) error {
	start, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", request.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", request.EndDate, err)
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, request.EmployeeID, dateStr)
		if err != nil {
			return fmt.Errorf("failed to check attendance for %s: %w", dateStr, err)
		}
		if existing != nil {
			existing.Status = attendance.StatusOnLeave
			if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
				return fmt.Errorf("failed to update attendance for %s: %w", dateStr, err)
			}
			continue
		}

		_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			ID:           uuid.NewString(),
			EmployeeID:   request.EmployeeID,
			EmployeeName: request.EmployeeName,
			Date:         dateStr,
			Status:       attendance.StatusOnLeave,
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance for %s: %w", dateStr, err)
		}
	}
	return nil
}

// notifyDecision emails the employee and pushes an SSE event. Neither failure
// fails the decision itself.
func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, request leave.LeaveRequest) {
	s.events.Publish(request.EmployeeID, sse.Event{
		Event: sse.EventLeaveDecision,
		Data: map[string]string{
			"id":     request.ID,
			"status": string(request.Status),
		},
	})

	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		slog.Warn("Leave decision email skipped: employee lookup failed", "employee_id", request.EmployeeID, "error", err)
		return
	}

	// The legacy document has no employee email column; usernames double as
	// local mailbox names where SMTP is configured. The send retries with
	// backoff, so it runs off the request path.
	to := emp.Username
	go func() {
		if err := s.emailService.SendLeaveDecision(to, emp.Name, string(request.LeaveType), request.StartDate, request.EndDate, string(request.Status)); err != nil {
			slog.Error("Failed to send leave decision email", "employee_id", emp.ID, "error", err)
		}
	}()
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, leave.ToResponse(lr))
	}
	return out
}
