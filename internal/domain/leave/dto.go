package leave

import (
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	LeaveType  string `json:"leave_type"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.LeaveType != string(LeaveTypePaid) && r.LeaveType != string(LeaveTypeUnpaid) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be Paid or Unpaid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status          string   `json:"status"`
	DeductionAmount *float64 `json:"deduction_amount"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}
	if r.DeductionAmount != nil && *r.DeductionAmount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_amount",
			Message: "deduction_amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employee_id"`
	EmployeeName    string   `json:"employee_name"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Reason          string   `json:"reason"`
	LeaveType       string   `json:"leave_type"`
	Status          string   `json:"status"`
	DeductionAmount *float64 `json:"deduction_amount,omitempty"`
}

func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		StartDate:       lr.StartDate,
		EndDate:         lr.EndDate,
		Reason:          lr.Reason,
		LeaveType:       string(lr.LeaveType),
		Status:          string(lr.Status),
		DeductionAmount: lr.DeductionAmount,
	}
}
