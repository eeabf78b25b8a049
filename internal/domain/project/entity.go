package project

import "time"

type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

// Project is owned and mutated solely by the employee who created it.
type Project struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	ProjectName  string    `json:"projectName"`
	Description  string    `json:"description"`
	Status       Status    `json:"status"`
	FileName     *string   `json:"fileName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
