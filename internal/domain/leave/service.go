package leave

import "context"

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// Apply files a new leave request, enforcing the one-paid-leave-per-month quota
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// UpdateStatus approves or rejects a request. Approval backfills On Leave
	// attendance rows across the request's date range and, for Unpaid leave with
	// a positive amount, records the payroll deduction.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error

	// List retrieves all leave requests (admin)
	List(ctx context.Context) ([]LeaveRequestResponse, error)

	// ListByEmployee retrieves one employee's leave requests
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
}
