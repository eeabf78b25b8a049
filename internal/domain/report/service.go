package report

import "context"

// ReportService flattens collections to CSV for download. An empty source
// collection yields an empty string, which callers treat as nothing to export.
type ReportService interface {
	ExportAttendanceCSV(ctx context.Context) (string, error)
	ExportLeaveCSV(ctx context.Context) (string, error)
}
