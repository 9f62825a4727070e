package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

func (su *SupabaseRepo) ListCeremonies(ctx context.Context, clientID uuid.UUID) ([]Ceremony, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client UUID")
	}

	raw, _, err := su.supabaseClient.
		From(CeremoniesTable).
		Select("*", "", false).
		Eq("client_id", clientID.String()).
		Order("date_time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list ceremonies: %v", err)
	}

	var ceremonies []Ceremony
	if err := json.Unmarshal(raw, &ceremonies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ceremony rows: %v", err)
	}

	return ceremonies, nil
}

func (su *SupabaseRepo) InsertCeremony(ctx context.Context, ceremony *Ceremony, accessToken string) (*Ceremony, error) {
	ceremonyData := map[string]interface{}{
		"id":        ceremony.ID,
		"client_id": ceremony.ClientID,
		"title":     ceremony.Title,
		"date_time": ceremony.DateTime,
		"venue":     ceremony.Venue,
		"map_url":   ceremony.MapURL,
		"notes":     ceremony.Notes,
	}

	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client: %v", err)
	}

	raw, count, err := authClient.
		From(CeremoniesTable).
		Insert(ceremonyData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert ceremony: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no ceremony row returned after insert")
	}

	var created []Ceremony
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created ceremony: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no ceremony data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) UpdateCeremony(ctx context.Context, id uuid.UUID, updates map[string]interface{}, accessToken string) (*Ceremony, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client: %v", err)
	}

	raw, count, err := authClient.
		From(CeremoniesTable).
		Update(updates, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update ceremony: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("ceremony: %w", ErrNotFound)
	}

	var updated []Ceremony
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated ceremony: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no ceremony data returned after update")
	}

	return &updated[0], nil
}

func (su *SupabaseRepo) DeleteCeremony(ctx context.Context, id uuid.UUID, accessToken string) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid UUID")
	}

	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return fmt.Errorf("failed to get authenticated client: %v", err)
	}

	_, count, err := authClient.
		From(CeremoniesTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete ceremony: %v", err)
	}
	if count == 0 {
		return fmt.Errorf("ceremony: %w", ErrNotFound)
	}

	return nil
}
