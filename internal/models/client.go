package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Client is the aggregate root: one couple, one invitation page. Ceremonies,
// photos and blessings all hang off its id.
type Client struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CoupleName   string    `db:"couple_name" json:"couple_name" validate:"required"`
	Slug         string    `db:"slug" json:"slug"`
	ContactEmail string    `db:"contact_email" json:"contact_email,omitempty" validate:"omitempty,email"`
	TemplateID   string    `db:"template_id" json:"template_id" validate:"omitempty,oneof=simple elegant motion romantic"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type ClientRepo interface {
	ListClients(ctx context.Context) ([]Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*Client, error)
	GetClientBySlug(ctx context.Context, slug string) (*Client, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	// Writes act under the admin's access token so row level security
	// applies.
	CreateClient(ctx context.Context, client *Client, accessToken string) (*Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, updates map[string]interface{}, accessToken string) (*Client, error)
}
