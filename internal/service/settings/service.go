package settings

import (
	"context"
	"fmt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	repo settings.SettingsRepository
}

func NewSettingsService(repo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{repo: repo}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.OfficeSettings, error) {
	return s.repo.Get(ctx)
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.OfficeSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.OfficeSettings{}, err
	}

	updated := settings.OfficeSettings{
		OfficeLocation: settings.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		ClockInRadius: req.ClockInRadius,
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return settings.OfficeSettings{}, fmt.Errorf("failed to update office settings: %w", err)
	}
	return updated, nil
}
