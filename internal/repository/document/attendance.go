package document

import (
	"context"
	"sort"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *Store
}

// NewAttendanceRepository creates a new attendance repository backed by the store
func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	err := r.store.Mutate(func(doc *Document) error {
		doc.Attendance = append(doc.Attendance, att)
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	var found *attendance.Attendance
	err := r.store.View(func(doc *Document) error {
		for i := range doc.Attendance {
			if doc.Attendance[i].EmployeeID == employeeID && doc.Attendance[i].Date == date {
				att := doc.Attendance[i]
				found = &att
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.Attendance {
			if doc.Attendance[i].ID == att.ID {
				doc.Attendance[i] = att
				return nil
			}
		}
		return attendance.ErrRecordNotFound
	})
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	err := r.store.View(func(doc *Document) error {
		out = append([]attendance.Attendance(nil), doc.Attendance...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	err := r.store.View(func(doc *Document) error {
		for _, att := range doc.Attendance {
			if att.EmployeeID == employeeID {
				out = append(out, att)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByDateDesc(out)
	return out, nil
}

func sortByDateDesc(records []attendance.Attendance) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}
