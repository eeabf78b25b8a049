package employee

import (
	"io"

	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
	Password string  `json:"password"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username may only contain letters, numbers, dots, underscores, and hyphens (3-50 characters)",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name     *string  `json:"name"`
	Username *string  `json:"username"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"`
	Password *string  `json:"password"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username may only contain letters, numbers, dots, underscores, and hyphens (3-50 characters)",
		})
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAvatarRequest struct {
	EmployeeID string
	File       io.Reader
	Filename   string
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
	Avatar   string  `json:"avatar"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       emp.ID,
		Name:     emp.Name,
		Username: emp.Username,
		Position: emp.Position,
		Salary:   emp.Salary,
		Avatar:   emp.Avatar,
	}
}
