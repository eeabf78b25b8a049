package document

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
)

type adminProfileRepositoryImpl struct {
	store *Store
}

// NewAdminProfileRepository creates a new admin profile repository backed by the store
func NewAdminProfileRepository(store *Store) admin.ProfileRepository {
	return &adminProfileRepositoryImpl{store: store}
}

func (r *adminProfileRepositoryImpl) GetByID(ctx context.Context, id string) (admin.Profile, error) {
	var found admin.Profile
	err := r.store.View(func(doc *Document) error {
		for _, p := range doc.AdminProfiles {
			if p.ID == id {
				found = p
				return nil
			}
		}
		return admin.ErrProfileNotFound
	})
	return found, err
}

func (r *adminProfileRepositoryImpl) GetByUsername(ctx context.Context, username string) (admin.Profile, error) {
	var found admin.Profile
	err := r.store.View(func(doc *Document) error {
		for _, p := range doc.AdminProfiles {
			if p.Username == username {
				found = p
				return nil
			}
		}
		return admin.ErrProfileNotFound
	})
	return found, err
}

func (r *adminProfileRepositoryImpl) List(ctx context.Context) ([]admin.Profile, error) {
	var out []admin.Profile
	err := r.store.View(func(doc *Document) error {
		out = append([]admin.Profile(nil), doc.AdminProfiles...)
		return nil
	})
	return out, err
}

func (r *adminProfileRepositoryImpl) Create(ctx context.Context, profile admin.Profile) (admin.Profile, error) {
	err := r.store.Mutate(func(doc *Document) error {
		for _, p := range doc.AdminProfiles {
			if p.Username == profile.Username {
				return admin.ErrUsernameExists
			}
		}
		doc.AdminProfiles = append(doc.AdminProfiles, profile)
		return nil
	})
	if err != nil {
		return admin.Profile{}, err
	}
	return profile, nil
}

func (r *adminProfileRepositoryImpl) Update(ctx context.Context, profile admin.Profile) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.AdminProfiles {
			if doc.AdminProfiles[i].ID != profile.ID {
				continue
			}
			for j := range doc.AdminProfiles {
				if j != i && doc.AdminProfiles[j].Username == profile.Username {
					return admin.ErrUsernameExists
				}
			}
			doc.AdminProfiles[i] = profile
			return nil
		}
		return admin.ErrProfileNotFound
	})
}
