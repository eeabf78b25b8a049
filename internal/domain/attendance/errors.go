package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")
	ErrOutsideRadius     = errors.New("you are outside the allowed clock-in radius")
	ErrRecordNotFound    = errors.New("attendance record not found")
)

// OutsideRadiusError carries the configured radius and the measured distance
// for user display. It unwraps to ErrOutsideRadius.
type OutsideRadiusError struct {
	RadiusMeters   int
	DistanceMeters int
}

func (e *OutsideRadiusError) Error() string {
	return fmt.Sprintf("you must be within %d meters of the office to clock in; you are currently %d meters away",
		e.RadiusMeters, e.DistanceMeters)
}

func (e *OutsideRadiusError) Unwrap() error {
	return ErrOutsideRadius
}
