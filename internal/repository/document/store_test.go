package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/chat"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return store
}

func TestOpenCreatesDocumentWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := Open(path)
	require.NoError(t, err)

	// Defaults are seeded and written to disk.
	_, err = os.Stat(path)
	require.NoError(t, err)

	err = store.View(func(doc *Document) error {
		assert.Equal(t, 3, doc.SchemaVersion)
		assert.Equal(t, DefaultClockInRadius, doc.Settings.ClockInRadius)
		assert.Equal(t, DefaultOfficeLatitude, doc.Settings.OfficeLocation.Latitude)
		assert.NotNil(t, doc.Employees)
		require.Len(t, doc.AdminProfiles, 1)
		assert.Equal(t, DefaultAdminUsername, doc.AdminProfiles[0].Username)
		return nil
	})
	require.NoError(t, err)
}

func TestOpenSeededAdminPasswordIsHashed(t *testing.T) {
	store := openTestStore(t)

	err := store.View(func(doc *Document) error {
		require.Len(t, doc.AdminProfiles, 1)
		profile := doc.AdminProfiles[0]
		assert.Empty(t, profile.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(DefaultAdminPassword)))
		return nil
	})
	require.NoError(t, err)
}

func TestOpenMigratesLegacyDocument(t *testing.T) {
	// A document written by the legacy app: singular adminProfile, plaintext
	// employee password, no schemaVersion.
	legacy := map[string]any{
		"employees": []map[string]any{
			{"id": "e1", "name": "Asha", "username": "asha", "password": "secret1"},
		},
		"adminProfile": map[string]any{
			"name":     "Boss",
			"username": "boss",
			"password": "bosspass",
		},
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	store, err := Open(path)
	require.NoError(t, err)

	err = store.View(func(doc *Document) error {
		assert.Equal(t, 3, doc.SchemaVersion)
		assert.Nil(t, doc.AdminProfile)

		require.Len(t, doc.AdminProfiles, 1)
		boss := doc.AdminProfiles[0]
		assert.Equal(t, "boss", boss.Username)
		assert.Equal(t, "Boss", boss.Name)
		assert.NotEmpty(t, boss.ID)
		assert.Empty(t, boss.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(boss.PasswordHash), []byte("bosspass")))

		require.Len(t, doc.Employees, 1)
		assert.Empty(t, doc.Employees[0].Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(doc.Employees[0].PasswordHash), []byte("secret1")))
		return nil
	})
	require.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := Open(path)
	require.NoError(t, err)

	var firstHash string
	err = store.View(func(doc *Document) error {
		firstHash = doc.AdminProfiles[0].PasswordHash
		return nil
	})
	require.NoError(t, err)

	// Reopening must not reseed or rehash anything.
	store2, err := Open(path)
	require.NoError(t, err)
	err = store2.View(func(doc *Document) error {
		require.Len(t, doc.AdminProfiles, 1)
		assert.Equal(t, firstHash, doc.AdminProfiles[0].PasswordHash)
		return nil
	})
	require.NoError(t, err)
}

func TestMutatePersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := Open(path)
	require.NoError(t, err)

	repo := NewEmployeeRepository(store)
	_, err = repo.Create(context.Background(), employee.Employee{
		ID: "e1", Name: "Asha", Username: "asha",
	})
	require.NoError(t, err)

	reloaded, err := Open(path)
	require.NoError(t, err)
	got, err := NewEmployeeRepository(reloaded).GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "asha", got.Username)
}

func TestMutateErrorWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := Open(path)
	require.NoError(t, err)

	repo := NewEmployeeRepository(store)
	ctx := context.Background()
	_, err = repo.Create(ctx, employee.Employee{ID: "e1", Username: "asha"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{ID: "e2", Username: "asha"})
	require.ErrorIs(t, err, employee.ErrUsernameExists)

	reloaded, err := Open(path)
	require.NoError(t, err)
	list, err := NewEmployeeRepository(reloaded).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFailedPersistRollsBackMemory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	store, err := Open(path)
	require.NoError(t, err)

	repo := NewEmployeeRepository(store)
	ctx := context.Background()
	_, err = repo.Create(ctx, employee.Employee{ID: "e1", Username: "asha"})
	require.NoError(t, err)

	// Point the store at a directory that does not exist so the next persist
	// fails after the mutation ran.
	store.path = filepath.Join(dir, "missing", "db.json")
	_, err = repo.Create(ctx, employee.Employee{ID: "e2", Username: "budi"})
	require.Error(t, err)

	// The in-memory document must not keep a write that never reached disk.
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Writes work again once the path is valid, and only persisted state survives.
	store.path = path
	_, err = repo.Create(ctx, employee.Employee{ID: "e3", Username: "cita"})
	require.NoError(t, err)

	reloaded, err := Open(path)
	require.NoError(t, err)
	list, err = NewEmployeeRepository(reloaded).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEmployeeDeleteCascades(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empRepo := NewEmployeeRepository(store)
	attRepo := NewAttendanceRepository(store)

	_, err := empRepo.Create(ctx, employee.Employee{ID: "e1", Username: "asha"})
	require.NoError(t, err)
	_, err = empRepo.Create(ctx, employee.Employee{ID: "e2", Username: "ravi"})
	require.NoError(t, err)

	_, err = attRepo.Create(ctx, attendance.Attendance{ID: "a1", EmployeeID: "e1", Date: "2026-08-30"})
	require.NoError(t, err)
	_, err = attRepo.Create(ctx, attendance.Attendance{ID: "a2", EmployeeID: "e2", Date: "2026-08-30"})
	require.NoError(t, err)

	require.NoError(t, empRepo.Delete(ctx, "e1"))

	records, err := attRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "e2", records[0].EmployeeID)

	_, err = empRepo.GetByID(ctx, "e1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestChatGroupDeleteCascades(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	groupRepo := NewChatGroupRepository(store)
	msgRepo := NewChatMessageRepository(store)
	statusRepo := NewReadStatusRepository(store)

	_, err := groupRepo.Create(ctx, chat.Group{ID: "g1", Name: "General", Members: []string{"e1"}})
	require.NoError(t, err)
	_, err = groupRepo.Create(ctx, chat.Group{ID: "g2", Name: "Random", Members: []string{"e1"}})
	require.NoError(t, err)

	_, err = msgRepo.Create(ctx, chat.Message{ID: "m1", GroupID: "g1", Text: "hi"})
	require.NoError(t, err)
	_, err = msgRepo.Create(ctx, chat.Message{ID: "m2", GroupID: "g2", Text: "yo"})
	require.NoError(t, err)

	require.NoError(t, statusRepo.Upsert(ctx, chat.ReadStatus{UserID: "e1", GroupID: "g1"}))

	require.NoError(t, groupRepo.Delete(ctx, "g1"))

	msgs, err := msgRepo.ListByGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	st, err := statusRepo.Get(ctx, "e1", "g1")
	require.NoError(t, err)
	assert.Nil(t, st)

	remaining, err := groupRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
