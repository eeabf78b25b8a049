package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/service/file"
)

type AdminServiceImpl struct {
	repo        admin.ProfileRepository
	fileService file.FileService
}

func NewAdminService(repo admin.ProfileRepository, fileService file.FileService) admin.AdminService {
	return &AdminServiceImpl{
		repo:        repo,
		fileService: fileService,
	}
}

// Get implements admin.AdminService.
func (s *AdminServiceImpl) Get(ctx context.Context, id string) (admin.ProfileResponse, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return admin.ProfileResponse{}, err
	}
	return admin.ToResponse(profile), nil
}

// List implements admin.AdminService.
func (s *AdminServiceImpl) List(ctx context.Context) ([]admin.ProfileResponse, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin profiles: %w", err)
	}

	out := make([]admin.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, admin.ToResponse(p))
	}
	return out, nil
}

// Create implements admin.AdminService.
func (s *AdminServiceImpl) Create(ctx context.Context, req admin.CreateProfileRequest) (admin.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.ProfileResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin.ProfileResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := admin.Profile{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Avatar:       "https://placehold.co/100x100.png",
		Username:     req.Username,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return admin.ProfileResponse{}, err
	}
	return admin.ToResponse(created), nil
}

// Update implements admin.AdminService.
func (s *AdminServiceImpl) Update(ctx context.Context, id string, req admin.UpdateProfileRequest) (admin.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.ProfileResponse{}, err
	}

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return admin.ProfileResponse{}, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Username != nil {
		profile.Username = *req.Username
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return admin.ProfileResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		profile.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return admin.ProfileResponse{}, err
	}
	return admin.ToResponse(profile), nil
}

// UpdateAvatar implements admin.AdminService.
func (s *AdminServiceImpl) UpdateAvatar(ctx context.Context, req admin.UpdateAvatarRequest) (admin.ProfileResponse, error) {
	profile, err := s.repo.GetByID(ctx, req.AdminID)
	if err != nil {
		return admin.ProfileResponse{}, err
	}

	avatarURL, err := s.fileService.UploadAvatar(ctx, profile.ID, req.File, req.Filename)
	if err != nil {
		return admin.ProfileResponse{}, err
	}

	profile.Avatar = avatarURL
	if err := s.repo.Update(ctx, profile); err != nil {
		return admin.ProfileResponse{}, err
	}
	return admin.ToResponse(profile), nil
}
