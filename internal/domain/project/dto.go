package project

import (
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

var validStatuses = []string{
	string(StatusInProgress),
	string(StatusCompleted),
	string(StatusOnHold),
}

type CreateProjectRequest struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	ProjectName  string  `json:"project_name"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	FileName     *string `json:"file_name"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ProjectName) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name is required",
		})
	}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be In Progress, Completed, or On Hold",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ProjectName *string `json:"project_name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	FileName    *string `json:"file_name"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ProjectName != nil && validator.IsEmpty(*r.ProjectName) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name must not be empty",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be In Progress, Completed, or On Hold",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
