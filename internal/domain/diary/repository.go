package diary

import "context"

type DiaryRepository interface {
	// Upsert creates the entry for (employeeID, date) or replaces its task list
	Upsert(ctx context.Context, entry Entry) (Entry, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
}
