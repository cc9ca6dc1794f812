package settings

import (
	"Relief-Aid-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SettingsRepository interface {
		GetSetting(ctx context.Context, key string) (*entities.SystemSetting, error)
		UpsertSetting(ctx context.Context, key string, value string) error
	}

	settingsRepository struct {
		db *gorm.DB
	}
)

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetSetting(ctx context.Context, key string) (*entities.SystemSetting, error) {
	var setting entities.SystemSetting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepository) UpsertSetting(ctx context.Context, key string, value string) error {
	setting := &entities.SystemSetting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(setting).Error
}
