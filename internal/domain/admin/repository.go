package admin

import "context"

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByUsername(ctx context.Context, username string) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
	Update(ctx context.Context, profile Profile) error
}
