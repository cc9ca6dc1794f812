package settings

import (
	"Relief-Aid-Backend/domain"
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
)

type (
	SettingsService interface {
		GetAutoApprove(ctx context.Context) (bool, error)
		SetAutoApprove(ctx context.Context, value bool) (bool, error)
	}

	settingsService struct {
		settingsRepository SettingsRepository
	}
)

func NewSettingsService(settingsRepository SettingsRepository) SettingsService {
	return &settingsService{settingsRepository: settingsRepository}
}

func (s *settingsService) GetAutoApprove(ctx context.Context) (bool, error) {
	setting, err := s.settingsRepository.GetSetting(ctx, domain.SettingAutoApprove)
	if err != nil {
		// An absent row is the valid initial state, not an error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return setting.Value == "true", nil
}

func (s *settingsService) SetAutoApprove(ctx context.Context, value bool) (bool, error) {
	if err := s.settingsRepository.UpsertSetting(ctx, domain.SettingAutoApprove, strconv.FormatBool(value)); err != nil {
		return false, err
	}
	return value, nil
}
