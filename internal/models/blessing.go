package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Blessing is a guestbook entry left by a visitor. Append-only: never
// edited or deleted through the UI.
type Blessing struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClientID  uuid.UUID `db:"client_id" json:"client_id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Message   string    `db:"message" json:"message" validate:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type BlessingRepo interface {
	// ListBlessings returns a client's blessings newest first.
	ListBlessings(ctx context.Context, clientID uuid.UUID) ([]Blessing, error)
	InsertBlessing(ctx context.Context, blessing *Blessing) (*Blessing, error)
}
