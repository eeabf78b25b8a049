package attendance

import (
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClockResponse reports the recorded time of a clock action.
type ClockResponse struct {
	Time string `json:"time"` // 15:04:05
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	Status       string  `json:"status"`
}

func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date,
		ClockIn:      att.ClockIn,
		ClockOut:     att.ClockOut,
		Status:       string(att.Status),
	}
}
