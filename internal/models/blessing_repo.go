package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

func (su *SupabaseRepo) ListBlessings(ctx context.Context, clientID uuid.UUID) ([]Blessing, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client UUID")
	}

	raw, _, err := su.supabaseClient.
		From(BlessingsTable).
		Select("*", "", false).
		Eq("client_id", clientID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list blessings: %v", err)
	}

	var blessings []Blessing
	if err := json.Unmarshal(raw, &blessings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blessing rows: %v", err)
	}

	return blessings, nil
}

func (su *SupabaseRepo) InsertBlessing(ctx context.Context, blessing *Blessing) (*Blessing, error) {
	blessingData := map[string]interface{}{
		"id":        blessing.ID,
		"client_id": blessing.ClientID,
		"name":      blessing.Name,
		"message":   blessing.Message,
	}

	raw, count, err := su.supabaseClient.
		From(BlessingsTable).
		Insert(blessingData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert blessing: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no blessing row returned after insert")
	}

	var created []Blessing
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created blessing: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no blessing data returned after insert")
	}

	return &created[0], nil
}
