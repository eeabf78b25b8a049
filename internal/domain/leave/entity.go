package leave

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "Paid"
	LeaveTypeUnpaid LeaveType = "Unpaid"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest covers an inclusive calendar range. For a given employee at most
// one Paid request with status Pending or Approved may exist per start-date
// calendar month.
type LeaveRequest struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	StartDate    string    `json:"startDate"` // 2006-01-02
	EndDate      string    `json:"endDate"`   // inclusive, >= StartDate
	Reason       string    `json:"reason"`
	LeaveType    LeaveType `json:"leaveType"`
	Status       Status    `json:"status"`

	// DeductionAmount is only set when an Unpaid request is approved with an
	// admin-specified amount greater than zero.
	DeductionAmount *float64 `json:"deductionAmount,omitempty"`
}
