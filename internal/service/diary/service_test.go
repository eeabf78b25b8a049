package diary

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/diary"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
)

func newDiaryTestService(t *testing.T) (diary.DiaryService, employee.EmployeeRepository) {
	t.Helper()
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	employeeRepo := document.NewEmployeeRepository(store)
	svc := NewDiaryService(document.NewDiaryRepository(store), employeeRepo)
	return svc, employeeRepo
}

func seedDiaryEmployee(t *testing.T, repo employee.EmployeeRepository) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		ID:       "emp-1",
		Name:     "Asha Kumar",
		Username: "asha",
		Position: "Engineer",
	})
	require.NoError(t, err)
	return emp
}

func TestUpsertCreatesEntry(t *testing.T) {
	svc, employeeRepo := newDiaryTestService(t)
	emp := seedDiaryEmployee(t, employeeRepo)

	entry, err := svc.Upsert(context.Background(), diary.UpsertEntryRequest{
		EmployeeID: emp.ID,
		Date:       "2026-08-31",
		Tasks: []diary.Task{
			{TaskName: "Ship exports", Status: diary.TaskStatusOnSchedule, PlannedHours: "4"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, emp.Name, entry.EmployeeName)
	assert.Len(t, entry.Tasks, 1)

	got, err := svc.Get(context.Background(), emp.ID, "2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.ID, got.ID)
}

func TestUpsertReplacesSameDay(t *testing.T) {
	svc, employeeRepo := newDiaryTestService(t)
	emp := seedDiaryEmployee(t, employeeRepo)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, diary.UpsertEntryRequest{
		EmployeeID: emp.ID,
		Date:       "2026-08-31",
		Tasks:      []diary.Task{{TaskName: "Draft", Status: diary.TaskStatusNotStarted}},
	})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, diary.UpsertEntryRequest{
		EmployeeID: emp.ID,
		Date:       "2026-08-31",
		Tasks: []diary.Task{
			{TaskName: "Draft", Status: diary.TaskStatusAhead},
			{TaskName: "Review", Status: diary.TaskStatusNotStarted},
		},
	})
	require.NoError(t, err)

	// Saving the same day keeps the original entry ID and replaces the tasks.
	assert.Equal(t, first.ID, second.ID)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Tasks, 2)
}

func TestUpsertSeparateDays(t *testing.T) {
	svc, employeeRepo := newDiaryTestService(t)
	emp := seedDiaryEmployee(t, employeeRepo)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, diary.UpsertEntryRequest{
		EmployeeID: emp.ID, Date: "2026-08-30",
		Tasks: []diary.Task{{TaskName: "Spec", Status: diary.TaskStatusBehind}},
	})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, diary.UpsertEntryRequest{
		EmployeeID: emp.ID, Date: "2026-08-31",
		Tasks: []diary.Task{{TaskName: "Spec", Status: diary.TaskStatusOnSchedule}},
	})
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUpsertUnknownEmployee(t *testing.T) {
	svc, _ := newDiaryTestService(t)

	_, err := svc.Upsert(context.Background(), diary.UpsertEntryRequest{
		EmployeeID: "nope",
		Date:       "2026-08-31",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpsertValidation(t *testing.T) {
	svc, employeeRepo := newDiaryTestService(t)
	emp := seedDiaryEmployee(t, employeeRepo)

	_, err := svc.Upsert(context.Background(), diary.UpsertEntryRequest{
		EmployeeID: emp.ID,
		Date:       "31-08-2026",
	})
	assert.Error(t, err)

	_, err = svc.Upsert(context.Background(), diary.UpsertEntryRequest{
		EmployeeID: emp.ID,
		Date:       "2026-08-31",
		Tasks:      []diary.Task{{TaskName: "x", Status: "Done-ish"}},
	})
	assert.Error(t, err)
}

func TestGetMissingEntryIsNil(t *testing.T) {
	svc, employeeRepo := newDiaryTestService(t)
	emp := seedDiaryEmployee(t, employeeRepo)

	got, err := svc.Get(context.Background(), emp.ID, "2026-01-01")
	require.NoError(t, err)
	assert.Nil(t, got)
}
