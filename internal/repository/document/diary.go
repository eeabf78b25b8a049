package document

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/diary"
)

type diaryRepositoryImpl struct {
	store *Store
}

// NewDiaryRepository creates a new work diary repository backed by the store
func NewDiaryRepository(store *Store) diary.DiaryRepository {
	return &diaryRepositoryImpl{store: store}
}

func (r *diaryRepositoryImpl) Upsert(ctx context.Context, entry diary.Entry) (diary.Entry, error) {
	err := r.store.Mutate(func(doc *Document) error {
		for i := range doc.DayDiary {
			if doc.DayDiary[i].EmployeeID == entry.EmployeeID && doc.DayDiary[i].Date == entry.Date {
				entry.ID = doc.DayDiary[i].ID
				doc.DayDiary[i] = entry
				return nil
			}
		}
		doc.DayDiary = append(doc.DayDiary, entry)
		return nil
	})
	if err != nil {
		return diary.Entry{}, err
	}
	return entry, nil
}

func (r *diaryRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*diary.Entry, error) {
	var found *diary.Entry
	err := r.store.View(func(doc *Document) error {
		for i := range doc.DayDiary {
			if doc.DayDiary[i].EmployeeID == employeeID && doc.DayDiary[i].Date == date {
				entry := doc.DayDiary[i]
				found = &entry
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *diaryRepositoryImpl) List(ctx context.Context) ([]diary.Entry, error) {
	var out []diary.Entry
	err := r.store.View(func(doc *Document) error {
		out = append([]diary.Entry(nil), doc.DayDiary...)
		return nil
	})
	return out, err
}
