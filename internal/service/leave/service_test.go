package leave

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/email"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/sse"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
)

func newLeaveTestService(t *testing.T) (leave.LeaveService, *document.Store) {
	t.Helper()
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	svc := NewLeaveService(
		document.NewLeaveRequestRepository(store),
		document.NewAttendanceRepository(store),
		document.NewEmployeeRepository(store),
		email.NewEmailService(config.SMTPConfig{}), // no SMTP host: sends are skipped
		sse.NewHub(),
	)
	return svc, store
}

func seedEmployee(t *testing.T, store *document.Store, id string) {
	t.Helper()
	_, err := document.NewEmployeeRepository(store).Create(context.Background(), employee.Employee{
		ID:       id,
		Name:     "Test " + id,
		Username: id,
	})
	require.NoError(t, err)
}

func applyLeave(t *testing.T, svc leave.LeaveService, employeeID, start, end, leaveType string) leave.LeaveRequestResponse {
	t.Helper()
	resp, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     "personal",
		LeaveType:  leaveType,
	})
	require.NoError(t, err)
	return resp
}

func TestApplyCreatesPendingRequest(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-09", "Paid")
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "Test e1", resp.EmployeeName)
	assert.NotEmpty(t, resp.ID)
}

func TestPaidLeaveQuotaPerMonth(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	applyLeave(t, svc, "e1", "2026-09-07", "2026-09-08", "Paid")

	// Second Paid request starting in the same month is rejected.
	_, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: "e1", StartDate: "2026-09-21", EndDate: "2026-09-22",
		Reason: "more leave", LeaveType: "Paid",
	})
	assert.ErrorIs(t, err, leave.ErrPaidLeaveQuotaExceeded)

	// A different month is fine.
	applyLeave(t, svc, "e1", "2026-10-05", "2026-10-06", "Paid")

	// Unpaid requests are never quota-limited.
	applyLeave(t, svc, "e1", "2026-09-23", "2026-09-24", "Unpaid")
}

func TestPaidLeaveQuotaIgnoresRejected(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	first := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-08", "Paid")
	require.NoError(t, svc.UpdateStatus(context.Background(), first.ID, leave.UpdateStatusRequest{
		Status: string(leave.StatusRejected),
	}))

	// Rejection returns the month's quota.
	applyLeave(t, svc, "e1", "2026-09-21", "2026-09-22", "Paid")
}

func TestPaidLeaveQuotaIsPerEmployee(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")
	seedEmployee(t, store, "e2")

	applyLeave(t, svc, "e1", "2026-09-07", "2026-09-08", "Paid")
	applyLeave(t, svc, "e2", "2026-09-07", "2026-09-08", "Paid")
}

func TestApproveBackfillsAttendance(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-09", "Paid")
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
		Status: string(leave.StatusApproved),
	}))

	attRepo := document.NewAttendanceRepository(store)
	for _, date := range []string{"2026-09-07", "2026-09-08", "2026-09-09"} {
		rec, err := attRepo.GetByEmployeeAndDate(context.Background(), "e1", date)
		require.NoError(t, err)
		require.NotNil(t, rec, date)
		assert.Equal(t, attendance.StatusOnLeave, rec.Status)
		assert.Nil(t, rec.ClockIn)
		assert.Nil(t, rec.ClockOut)
	}
}

func TestApprovePreservesExistingClockTimes(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	clockIn := "09:00:00"
	attRepo := document.NewAttendanceRepository(store)
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		ID: "a1", EmployeeID: "e1", Date: "2026-09-07",
		ClockIn: &clockIn, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-07", "Paid")
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
		Status: string(leave.StatusApproved),
	}))

	rec, err := attRepo.GetByEmployeeAndDate(context.Background(), "e1", "2026-09-07")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusOnLeave, rec.Status)
	require.NotNil(t, rec.ClockIn)
	assert.Equal(t, "09:00:00", *rec.ClockIn)
}

func TestApproveUnpaidStoresDeduction(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-08", "Unpaid")

	amount := 150.0
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
		Status:          string(leave.StatusApproved),
		DeductionAmount: &amount,
	}))

	requests, err := svc.ListByEmployee(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.NotNil(t, requests[0].DeductionAmount)
	assert.Equal(t, 150.0, *requests[0].DeductionAmount)
}

func TestApprovePaidIgnoresDeduction(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-08", "Paid")

	amount := 150.0
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
		Status:          string(leave.StatusApproved),
		DeductionAmount: &amount,
	}))

	requests, err := svc.ListByEmployee(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Nil(t, requests[0].DeductionAmount)
}

func TestRejectLeavesAttendanceUntouched(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-08", "Paid")
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
		Status: string(leave.StatusRejected),
	}))

	rec, err := document.NewAttendanceRepository(store).GetByEmployeeAndDate(context.Background(), "e1", "2026-09-07")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	svc, _ := newLeaveTestService(t)

	err := svc.UpdateStatus(context.Background(), "missing", leave.UpdateStatusRequest{
		Status: string(leave.StatusApproved),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestUpdateStatusCanOverrideDecision(t *testing.T) {
	svc, store := newLeaveTestService(t)
	seedEmployee(t, store, "e1")

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-07", "Paid")
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
		Status: string(leave.StatusRejected),
	}))

	// A decided request can be re-decided; approval still backfills.
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
		Status: string(leave.StatusApproved),
	}))

	requests, err := svc.ListByEmployee(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, string(leave.StatusApproved), requests[0].Status)
}

// slowEmailService blocks every send until released, recording when it ran.
type slowEmailService struct {
	release chan struct{}
	sent    chan struct{}
}

func (s *slowEmailService) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, status string) error {
	<-s.release
	close(s.sent)
	return nil
}

func TestDecisionDoesNotWaitForEmail(t *testing.T) {
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	seedEmployee(t, store, "e1")

	mail := &slowEmailService{
		release: make(chan struct{}),
		sent:    make(chan struct{}),
	}
	svc := NewLeaveService(
		document.NewLeaveRequestRepository(store),
		document.NewAttendanceRepository(store),
		document.NewEmployeeRepository(store),
		mail,
		sse.NewHub(),
	)

	resp := applyLeave(t, svc, "e1", "2026-09-07", "2026-09-07", "Paid")

	// The decision must come back while the mail send is still blocked.
	done := make(chan error, 1)
	go func() {
		done <- svc.UpdateStatus(context.Background(), resp.ID, leave.UpdateStatusRequest{
			Status: string(leave.StatusApproved),
		})
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("UpdateStatus blocked on the decision email")
	}

	close(mail.release)
	select {
	case <-mail.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("decision email was never sent")
	}
}
