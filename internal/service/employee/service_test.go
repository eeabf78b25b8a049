package employee

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/storage"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
	"github.com/teamtrack/teamtrack-backend-go/internal/service/file"
)

func newEmployeeTestService(t *testing.T) (employee.EmployeeService, *document.Store) {
	t.Helper()
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	localStorage, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	svc := NewEmployeeService(
		document.NewEmployeeRepository(store),
		file.NewFileService(localStorage),
	)
	return svc, store
}

func TestCreateEmployee(t *testing.T) {
	svc, store := newEmployeeTestService(t)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:     "Asha Kumar",
		Username: "asha",
		Position: "Engineer",
		Salary:   75000,
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "asha", resp.Username)
	assert.True(t, strings.HasPrefix(resp.Avatar, "https://placehold.co/"))
	assert.Contains(t, resp.Avatar, "text=A")

	// The stored credential is a bcrypt hash, never the plaintext.
	stored, err := document.NewEmployeeRepository(store).GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestCreateEmployeeDuplicateUsername(t *testing.T) {
	svc, _ := newEmployeeTestService(t)
	ctx := context.Background()

	req := employee.CreateEmployeeRequest{
		Name: "Asha", Username: "asha", Position: "Engineer", Password: "pw123456",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req.Name = "Another Asha"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, employee.ErrUsernameExists)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, _ := newEmployeeTestService(t)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Asha", Username: "a", Position: "Engineer", Password: "pw",
	})
	assert.Error(t, err)
}

func TestUpdateEmployeePartial(t *testing.T) {
	svc, _ := newEmployeeTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name: "Asha", Username: "asha", Position: "Engineer", Salary: 75000, Password: "pw123456",
	})
	require.NoError(t, err)

	newPosition := "Senior Engineer"
	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{Position: &newPosition})
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.Equal(t, "asha", updated.Username)
	assert.Equal(t, 75000.0, updated.Salary)
}

func TestUpdateUnknownEmployee(t *testing.T) {
	svc, _ := newEmployeeTestService(t)

	name := "Ghost"
	_, err := svc.Update(context.Background(), "missing", employee.UpdateEmployeeRequest{Name: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateAvatarStoresFile(t *testing.T) {
	svc, _ := newEmployeeTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name: "Asha", Username: "asha", Position: "Engineer", Password: "pw123456",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAvatar(ctx, employee.UpdateAvatarRequest{
		EmployeeID: created.ID,
		File:       strings.NewReader("fake-png-bytes"),
		Filename:   "me.png",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.Avatar, "/uploads/"))
	assert.True(t, strings.HasSuffix(updated.Avatar, ".png"))
}

func TestUpdateAvatarRejectsBadExtension(t *testing.T) {
	svc, _ := newEmployeeTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name: "Asha", Username: "asha", Position: "Engineer", Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = svc.UpdateAvatar(ctx, employee.UpdateAvatarRequest{
		EmployeeID: created.ID,
		File:       strings.NewReader("#!/bin/sh"),
		Filename:   "evil.sh",
	})
	assert.Error(t, err)
}

func TestDeleteAndClearAll(t *testing.T) {
	svc, _ := newEmployeeTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name: "Asha", Username: "asha", Position: "Engineer", Password: "pw123456",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		Name: "Ravi", Username: "ravi", Position: "Designer", Password: "pw123456",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.ClearAll(ctx))

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
