package settings

import (
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

const (
	MinClockInRadius = 50
	MaxClockInRadius = 5000
)

type UpdateSettingsRequest struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ClockInRadius int     `json:"clock_in_radius"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

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
	if r.ClockInRadius < MinClockInRadius || r.ClockInRadius > MaxClockInRadius {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_radius",
			Message: "clock_in_radius must be between 50 and 5000 meters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
