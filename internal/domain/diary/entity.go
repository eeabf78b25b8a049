package diary

import "time"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusOnSchedule TaskStatus = "On schedule"
	TaskStatusAhead      TaskStatus = "Ahead"
	TaskStatusBehind     TaskStatus = "Behind"
)

type Task struct {
	TaskName       string     `json:"taskName"`
	Description    string     `json:"description"`
	PlannedHours   string     `json:"plannedHours"`
	EstimatedHours string     `json:"estimatedHours"`
	Status         TaskStatus `json:"status"`
}

// Entry is one employee's work diary for one calendar day. At most one entry
// exists per (EmployeeID, Date) pair; saving again replaces the task list.
type Entry struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Date         string    `json:"date"` // 2006-01-02
	Tasks        []Task    `json:"tasks"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
