package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	employeeRepo   employee.EmployeeRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
	}
}

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context) (string, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	usernames, err := s.usernamesByID(ctx)
	if err != nil {
		return "", err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})

	rows := [][]string{{"date", "employeeName", "username", "clockIn", "clockOut", "status"}}
	for _, rec := range records {
		rows = append(rows, []string{
			displayDate(rec.Date),
			rec.EmployeeName,
			usernameOr(usernames, rec.EmployeeID),
			stringOrEmpty(rec.ClockIn),
			stringOrEmpty(rec.ClockOut),
			string(rec.Status),
		})
	}
	return writeCSV(rows)
}

// ExportLeaveCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportLeaveCSV(ctx context.Context) (string, error) {
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list leave requests: %w", err)
	}
	if len(requests) == 0 {
		return "", nil
	}

	usernames, err := s.usernamesByID(ctx)
	if err != nil {
		return "", err
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].StartDate > requests[j].StartDate
	})

	rows := [][]string{{"startDate", "endDate", "employeeName", "username", "reason", "leaveType", "status", "deductionAmount"}}
	for _, req := range requests {
		deduction := ""
		if req.DeductionAmount != nil {
			deduction = strconv.FormatFloat(*req.DeductionAmount, 'f', -1, 64)
		}
		rows = append(rows, []string{
			displayDate(req.StartDate),
			displayDate(req.EndDate),
			req.EmployeeName,
			usernameOr(usernames, req.EmployeeID),
			req.Reason,
			string(req.LeaveType),
			string(req.Status),
			deduction,
		})
	}
	return writeCSV(rows)
}

func (s *ReportServiceImpl) usernamesByID(ctx context.Context) (map[string]string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	out := make(map[string]string, len(employees))
	for _, emp := range employees {
		out[emp.ID] = emp.Username
	}
	return out, nil
}

func usernameOr(usernames map[string]string, id string) string {
	if u, ok := usernames[id]; ok {
		return u
	}
	return "unknown"
}

// displayDate renders a stored 2006-01-02 date as "Jan 2, 2006" for the export.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeCSV(rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return sb.String(), nil
}
