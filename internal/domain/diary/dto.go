package diary

import (
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type UpsertEntryRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Tasks        []Task `json:"tasks"`
}

func (r *UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	validStatuses := []string{
		string(TaskStatusNotStarted),
		string(TaskStatusOnSchedule),
		string(TaskStatusAhead),
		string(TaskStatusBehind),
	}
	for i, task := range r.Tasks {
		if validator.IsEmpty(task.TaskName) {
			errs = append(errs, validator.ValidationError{
				Field:   "tasks",
				Message: "task name is required",
			})
			break
		}
		if !validator.IsInSlice(string(task.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "tasks",
				Message: "invalid task status at index " + validator.Itoa(i),
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
