package persistence

import (
	"context"
	"errors"

	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/byserkan/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSettingsRepository implements schedule.SettingsRepository using GORM.
// The store carries a single settings row; Load returns the oldest one
// should a migration ever leave more than one behind.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Load returns the current settings
func (r *GormSettingsRepository) Load(ctx context.Context) (*schedule.StoreSettings, error) {
	var settings schedule.StoreSettings
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save creates or updates the settings row
func (r *GormSettingsRepository) Save(ctx context.Context, settings *schedule.StoreSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
