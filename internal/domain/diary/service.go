package diary

import "context"

// DiaryService defines business logic for daily work reports
type DiaryService interface {
	// Upsert saves an employee's report for one day, replacing any earlier save
	Upsert(ctx context.Context, req UpsertEntryRequest) (Entry, error)

	// Get retrieves one employee's entry for one day (nil when absent)
	Get(ctx context.Context, employeeID string, date string) (*Entry, error)

	// List retrieves all diary entries (admin report)
	List(ctx context.Context) ([]Entry, error)
}
