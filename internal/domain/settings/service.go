package settings

import "context"

// SettingsService exposes the office geofence configuration
type SettingsService interface {
	Get(ctx context.Context) (OfficeSettings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (OfficeSettings, error)
}
