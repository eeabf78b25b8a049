package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadAvatar stores an avatar image and returns its public URL
	UploadAvatar(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error)

	// UploadProjectFile stores a project attachment and returns the stored filename
	UploadProjectFile(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var allowedImageExts = []string{".jpg", ".jpeg", ".png"}

// UploadAvatar uploads an avatar for an employee or admin profile
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	isValid := false
	for _, allowed := range allowedImageExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", ownerID, uuid.New().String(), ext)
	path := filepath.Join("avatars", newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return s.storage.URL(uploadedPath), nil
}

// UploadProjectFile uploads an attachment for a project
func (s *fileServiceImpl) UploadProjectFile(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	newFilename := fmt.Sprintf("%s-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("projects", newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path)
	if err != nil {
		return "", fmt.Errorf("failed to upload project file: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
