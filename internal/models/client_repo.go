package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

func (su *SupabaseRepo) ListClients(ctx context.Context) ([]Client, error) {
	raw, _, err := su.supabaseClient.
		From(ClientsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %v", err)
	}

	var clients []Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client rows: %v", err)
	}

	return clients, nil
}

func (su *SupabaseRepo) GetClientByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	raw, _, err := su.supabaseClient.
		From(ClientsTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get client by ID: %v", err)
	}

	return singleClient(raw)
}

func (su *SupabaseRepo) GetClientBySlug(ctx context.Context, slug string) (*Client, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	raw, _, err := su.supabaseClient.
		From(ClientsTable).
		Select("*", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get client by slug: %v", err)
	}

	return singleClient(raw)
}

// Supabase returns an array even for single results.
func singleClient(raw []byte) (*Client, error) {
	var clients []Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client rows: %v", err)
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("client: %w", ErrNotFound)
	}
	return &clients[0], nil
}

func (su *SupabaseRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	raw, _, err := su.supabaseClient.
		From(ClientsTable).
		Select("id", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return false, fmt.Errorf("failed to unmarshal slug rows: %v", err)
	}
	return len(rows) > 0, nil
}

func (su *SupabaseRepo) CreateClient(ctx context.Context, client *Client, accessToken string) (*Client, error) {
	clientData := map[string]interface{}{
		"id":            client.ID,
		"couple_name":   client.CoupleName,
		"slug":          client.Slug,
		"contact_email": client.ContactEmail,
		"template_id":   client.TemplateID,
		"created_at":    client.CreatedAt,
	}

	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client: %v", err)
	}

	raw, count, err := authClient.
		From(ClientsTable).
		Insert(clientData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no client row returned after insert")
	}

	var created []Client
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created client: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no client data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) UpdateClient(ctx context.Context, id uuid.UUID, updates map[string]interface{}, accessToken string) (*Client, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client: %v", err)
	}

	raw, count, err := authClient.
		From(ClientsTable).
		Update(updates, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("client: %w", ErrNotFound)
	}

	var updated []Client
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated client: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no client data returned after update")
	}

	return &updated[0], nil
}
