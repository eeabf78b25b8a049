package settings

import "context"

type SettingsRepository interface {
	Get(ctx context.Context) (OfficeSettings, error)
	Update(ctx context.Context, s OfficeSettings) error
}
