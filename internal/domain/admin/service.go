package admin

import "context"

// AdminService defines business logic for admin profiles
type AdminService interface {
	Get(ctx context.Context, id string) (ProfileResponse, error)
	List(ctx context.Context) ([]ProfileResponse, error)
	Create(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)
	Update(ctx context.Context, id string, req UpdateProfileRequest) (ProfileResponse, error)
	UpdateAvatar(ctx context.Context, req UpdateAvatarRequest) (ProfileResponse, error)
}
