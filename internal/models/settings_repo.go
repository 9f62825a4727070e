package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

func (su *SupabaseRepo) GetSettings(ctx context.Context) (*Settings, error) {
	raw, _, err := su.supabaseClient.
		From(SettingsTable).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %v", err)
	}

	var rows []Settings
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings rows: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("settings: %w", ErrNotFound)
	}

	return &rows[0], nil
}

func (su *SupabaseRepo) SaveSettings(ctx context.Context, settings *Settings, accessToken string) (*Settings, error) {
	settingsData := map[string]interface{}{
		"company_name":    settings.CompanyName,
		"company_phone":   settings.CompanyPhone,
		"company_email":   settings.CompanyEmail,
		"company_website": settings.CompanyWebsite,
		"company_address": settings.CompanyAddress,
	}

	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client: %v", err)
	}

	existing, err := su.GetSettings(ctx)

	var raw []byte
	switch {
	case err == nil:
		raw, _, err = authClient.
			From(SettingsTable).
			Update(settingsData, "", "exact").
			Eq("id", existing.ID.String()).
			Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to update settings: %v", err)
		}
	case errors.Is(err, ErrNotFound):
		raw, _, err = authClient.
			From(SettingsTable).
			Insert(settingsData, false, "", "", "exact").
			Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to insert settings: %v", err)
		}
	default:
		return nil, err
	}

	var rows []Settings
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved settings: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no settings data returned after save")
	}

	return &rows[0], nil
}
