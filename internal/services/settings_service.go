package services

import (
	"context"
	"fmt"

	"github.com/inviteleaf/api/internal/models"
)

type SettingsService struct {
	settingsRepo models.SettingsRepo
}

func NewSettingsService(settingsRepo models.SettingsRepo) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

func (ss *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	return ss.settingsRepo.GetSettings(ctx)
}

func (ss *SettingsService) SaveSettings(ctx context.Context, settings *models.Settings, accessToken string) (*models.Settings, error) {
	if err := models.Validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid settings data provided: %v", err)
	}

	return ss.settingsRepo.SaveSettings(ctx, settings, accessToken)
}
