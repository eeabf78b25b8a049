package attendance

import "context"

type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one calendar
	// day. Used to prevent double clock-in and to keep the one-row-per-day invariant.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) error

	// List retrieves all attendance records
	List(ctx context.Context) ([]Attendance, error)

	// ListByEmployee retrieves attendance records for one employee
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
}
