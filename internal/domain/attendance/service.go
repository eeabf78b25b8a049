package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records the employee's clock-in for today after the geofence check
	ClockIn(ctx context.Context, req ClockInRequest) (ClockResponse, error)

	// ClockOut records the employee's clock-out for today
	ClockOut(ctx context.Context, employeeID string) (ClockResponse, error)

	// List retrieves all attendance records (admin)
	List(ctx context.Context) ([]AttendanceResponse, error)

	// ListByEmployee retrieves one employee's attendance records
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}
