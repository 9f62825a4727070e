package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

func (su *SupabaseRepo) ListRSVPs(ctx context.Context, clientID uuid.UUID) ([]RSVP, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client UUID")
	}

	raw, _, err := su.supabaseClient.
		From(RSVPsTable).
		Select("*", "", false).
		Eq("client_id", clientID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %v", err)
	}

	var rsvps []RSVP
	if err := json.Unmarshal(raw, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rsvp rows: %v", err)
	}

	return rsvps, nil
}

func (su *SupabaseRepo) InsertRSVP(ctx context.Context, rsvp *RSVP) (*RSVP, error) {
	rsvpData := map[string]interface{}{
		"id":        rsvp.ID,
		"client_id": rsvp.ClientID,
		"name":      rsvp.Name,
		"email":     rsvp.Email,
		"response":  rsvp.Response,
		"message":   rsvp.Message,
	}

	raw, count, err := su.supabaseClient.
		From(RSVPsTable).
		Insert(rsvpData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert rsvp: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no rsvp row returned after insert")
	}

	var created []RSVP
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created rsvp: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no rsvp data returned after insert")
	}

	return &created[0], nil
}
