package attendance

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "On Leave"
)

// Attendance is one employee's record for one calendar day. At most one row
// exists per (EmployeeID, Date) pair.
type Attendance struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `json:"date"` // 2006-01-02
	ClockIn      *string `json:"clockIn"`
	ClockOut     *string `json:"clockOut"` // 15:04:05, only meaningful when ClockIn is set
	Status       Status  `json:"status"`
}
