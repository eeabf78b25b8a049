package leave

import "errors"

var (
	ErrLeaveRequestNotFound   = errors.New("leave request not found")
	ErrPaidLeaveQuotaExceeded = errors.New("a paid leave has already been requested or approved for this month")
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrInvalidStatus          = errors.New("status must be Approved or Rejected")
)
