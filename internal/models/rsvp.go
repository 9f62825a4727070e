package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RSVP is a visitor's attendance reply for one invitation.
type RSVP struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClientID  uuid.UUID `db:"client_id" json:"client_id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Email     string    `db:"email" json:"email,omitempty" validate:"omitempty,email"`
	Response  string    `db:"response" json:"response" validate:"required,oneof=yes no maybe"`
	Message   string    `db:"message" json:"message,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RSVPRepo interface {
	// ListRSVPs returns a client's replies newest first.
	ListRSVPs(ctx context.Context, clientID uuid.UUID) ([]RSVP, error)
	InsertRSVP(ctx context.Context, rsvp *RSVP) (*RSVP, error)
}
