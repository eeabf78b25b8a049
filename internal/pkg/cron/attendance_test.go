package cron

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
)

func newAttendanceJobs(t *testing.T, now time.Time) (*AttendanceJobs, *document.Store) {
	t.Helper()
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	jobs := NewAttendanceJobs(
		document.NewAttendanceRepository(store),
		document.NewEmployeeRepository(store),
		document.NewLeaveRequestRepository(store),
	)
	jobs.now = func() time.Time { return now }
	return jobs, store
}

func TestMarkAbsentEmployees(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 30, 0, 0, time.UTC) // yesterday = 2026-08-31
	jobs, store := newAttendanceJobs(t, now)
	ctx := context.Background()

	empRepo := document.NewEmployeeRepository(store)
	attRepo := document.NewAttendanceRepository(store)

	for _, id := range []string{"e1", "e2", "e3"} {
		_, err := empRepo.Create(ctx, employee.Employee{ID: id, Name: "Emp " + id, Username: id})
		require.NoError(t, err)
	}

	// e1 clocked in yesterday; e3 has approved leave covering yesterday.
	clockIn := "09:00:00"
	_, err := attRepo.Create(ctx, attendance.Attendance{
		ID: "a1", EmployeeID: "e1", Date: "2026-08-31", ClockIn: &clockIn, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = document.NewLeaveRequestRepository(store).Create(ctx, leave.LeaveRequest{
		ID: "l1", EmployeeID: "e3", StartDate: "2026-08-30", EndDate: "2026-09-01",
		LeaveType: leave.LeaveTypePaid, Status: leave.StatusApproved,
	})
	require.NoError(t, err)

	require.NoError(t, jobs.MarkAbsentEmployees(ctx))

	// Only e2 gets an Absent row.
	rec, err := attRepo.GetByEmployeeAndDate(ctx, "e2", "2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.ClockIn)

	rec, err = attRepo.GetByEmployeeAndDate(ctx, "e1", "2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusPresent, rec.Status)

	rec, err = attRepo.GetByEmployeeAndDate(ctx, "e3", "2026-08-31")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMarkAbsentEmployeesIsIdempotent(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 30, 0, 0, time.UTC)
	jobs, store := newAttendanceJobs(t, now)
	ctx := context.Background()

	_, err := document.NewEmployeeRepository(store).Create(ctx, employee.Employee{ID: "e1", Username: "e1"})
	require.NoError(t, err)

	require.NoError(t, jobs.MarkAbsentEmployees(ctx))
	require.NoError(t, jobs.MarkAbsentEmployees(ctx))

	records, err := document.NewAttendanceRepository(store).ListByEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
