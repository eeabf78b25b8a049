package admin

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/storage"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
	"github.com/teamtrack/teamtrack-backend-go/internal/service/file"
)

func newAdminTestService(t *testing.T) (admin.AdminService, admin.ProfileRepository) {
	t.Helper()
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	localStorage, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	repo := document.NewAdminProfileRepository(store)
	svc := NewAdminService(repo, file.NewFileService(localStorage))
	return svc, repo
}

func TestListIncludesSeededAdmin(t *testing.T) {
	svc, _ := newAdminTestService(t)

	profiles, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, document.DefaultAdminUsername, profiles[0].Username)
}

func TestCreateAdminProfile(t *testing.T) {
	svc, repo := newAdminTestService(t)

	created, err := svc.Create(context.Background(), admin.CreateProfileRequest{
		Name:     "Dewi Lestari",
		Username: "dewi",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "https://placehold.co/100x100.png", created.Avatar)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	svc, _ := newAdminTestService(t)

	_, err := svc.Create(context.Background(), admin.CreateProfileRequest{
		Name:     "Impostor",
		Username: document.DefaultAdminUsername,
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, admin.ErrUsernameExists)
}

func TestUpdateAdminProfilePartial(t *testing.T) {
	svc, repo := newAdminTestService(t)
	ctx := context.Background()

	profiles, err := svc.List(ctx)
	require.NoError(t, err)
	seeded := profiles[0]

	name := "Head of People"
	updated, err := svc.Update(ctx, seeded.ID, admin.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Head of People", updated.Name)
	assert.Equal(t, seeded.Username, updated.Username)

	// A new password replaces the stored hash.
	password := "rotated-pass"
	_, err = svc.Update(ctx, seeded.ID, admin.UpdateProfileRequest{Password: &password})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rotated-pass")))
}

func TestUpdateAdminUnknownID(t *testing.T) {
	svc, _ := newAdminTestService(t)

	name := "Nobody"
	_, err := svc.Update(context.Background(), "missing", admin.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, admin.ErrProfileNotFound)
}

func TestUpdateAdminAvatar(t *testing.T) {
	svc, _ := newAdminTestService(t)
	ctx := context.Background()

	profiles, err := svc.List(ctx)
	require.NoError(t, err)
	seeded := profiles[0]

	updated, err := svc.UpdateAvatar(ctx, admin.UpdateAvatarRequest{
		AdminID:  seeded.ID,
		File:     strings.NewReader("png-bytes"),
		Filename: "portrait.png",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.Avatar, "/uploads/"))

	_, err = svc.UpdateAvatar(ctx, admin.UpdateAvatarRequest{
		AdminID:  seeded.ID,
		File:     strings.NewReader("gif-bytes"),
		Filename: "portrait.gif",
	})
	assert.Error(t, err)
}
