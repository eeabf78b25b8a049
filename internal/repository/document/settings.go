package document

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/settings"
)

type settingsRepositoryImpl struct {
	store *Store
}

// NewSettingsRepository creates a new office settings repository backed by the store
func NewSettingsRepository(store *Store) settings.SettingsRepository {
	return &settingsRepositoryImpl{store: store}
}

func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.OfficeSettings, error) {
	var out settings.OfficeSettings
	err := r.store.View(func(doc *Document) error {
		out = doc.Settings
		return nil
	})
	return out, err
}

func (r *settingsRepositoryImpl) Update(ctx context.Context, s settings.OfficeSettings) error {
	return r.store.Mutate(func(doc *Document) error {
		doc.Settings = s
		return nil
	})
}
