package report

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/report"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
)

func newReportTestService(t *testing.T) (report.ReportService, *document.Store) {
	t.Helper()
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	svc := NewReportService(
		document.NewAttendanceRepository(store),
		document.NewLeaveRequestRepository(store),
		document.NewEmployeeRepository(store),
	)
	return svc, store
}

func TestExportAttendanceCSVEmpty(t *testing.T) {
	svc, _ := newReportTestService(t)

	out, err := svc.ExportAttendanceCSV(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExportAttendanceCSV(t *testing.T) {
	svc, store := newReportTestService(t)
	ctx := context.Background()

	_, err := document.NewEmployeeRepository(store).Create(ctx, employee.Employee{
		ID: "e1", Name: "Asha Kumar", Username: "asha",
	})
	require.NoError(t, err)

	clockIn := "09:00:00"
	attRepo := document.NewAttendanceRepository(store)
	_, err = attRepo.Create(ctx, attendance.Attendance{
		ID: "a1", EmployeeID: "e1", EmployeeName: "Asha Kumar",
		Date: "2026-08-30", ClockIn: &clockIn, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = attRepo.Create(ctx, attendance.Attendance{
		ID: "a2", EmployeeID: "deleted", EmployeeName: "Gone Person",
		Date: "2026-08-31", Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	out, err := svc.ExportAttendanceCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,employeeName,username,clockIn,clockOut,status", lines[0])

	// Rows are sorted by date descending; unknown employees export as "unknown".
	assert.Contains(t, lines[1], "Aug 31, 2026")
	assert.Contains(t, lines[1], "unknown")
	assert.Contains(t, lines[2], "Aug 30, 2026")
	assert.Contains(t, lines[2], "asha")
	assert.Contains(t, lines[2], "09:00:00")
}

func TestExportLeaveCSV(t *testing.T) {
	svc, store := newReportTestService(t)
	ctx := context.Background()

	_, err := document.NewEmployeeRepository(store).Create(ctx, employee.Employee{
		ID: "e1", Name: "Asha Kumar", Username: "asha",
	})
	require.NoError(t, err)

	amount := 120.5
	_, err = document.NewLeaveRequestRepository(store).Create(ctx, leave.LeaveRequest{
		ID: "l1", EmployeeID: "e1", EmployeeName: "Asha Kumar",
		StartDate: "2026-09-07", EndDate: "2026-09-09",
		Reason: "family, travel", LeaveType: leave.LeaveTypeUnpaid,
		Status: leave.StatusApproved, DeductionAmount: &amount,
	})
	require.NoError(t, err)

	out, err := svc.ExportLeaveCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "startDate,endDate,employeeName,username,reason,leaveType,status,deductionAmount", lines[0])
	// The comma in the reason is quoted, not split.
	assert.Contains(t, lines[1], `"family, travel"`)
	assert.Contains(t, lines[1], "120.5")
	assert.Contains(t, lines[1], "Sep 7, 2026")
}
