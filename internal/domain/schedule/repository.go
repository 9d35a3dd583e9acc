package schedule

import "context"

// SettingsRepository defines the interface for store settings persistence.
// The store carries a single settings row.
type SettingsRepository interface {
	// Load returns the current settings, or shared.ErrNotFound when
	// the store has never been configured
	Load(ctx context.Context) (*StoreSettings, error)

	// Save creates or updates the settings row
	Save(ctx context.Context, settings *StoreSettings) error
}
