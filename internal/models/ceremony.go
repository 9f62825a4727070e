package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Ceremony is one scheduled event of an invitation: the ceremony itself,
// the reception, a sangeet and so on.
type Ceremony struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClientID  uuid.UUID `db:"client_id" json:"client_id"`
	Title     string    `db:"title" json:"title"`
	DateTime  time.Time `db:"date_time" json:"date_time"`
	Venue     string    `db:"venue" json:"venue"`
	MapURL    string    `db:"map_url" json:"map_url,omitempty"`
	Notes     string    `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EventTypes are the named event titles the ceremony editor offers; a
// custom title is also accepted.
var EventTypes = []string{
	"Wedding Ceremony",
	"Reception",
	"Haldi",
	"Mehndi",
	"Sangeet",
	"Engagement",
}

type CeremonyRepo interface {
	// ListCeremonies returns a client's ceremonies ordered by date_time
	// ascending.
	ListCeremonies(ctx context.Context, clientID uuid.UUID) ([]Ceremony, error)
	InsertCeremony(ctx context.Context, ceremony *Ceremony, accessToken string) (*Ceremony, error)
	UpdateCeremony(ctx context.Context, id uuid.UUID, updates map[string]interface{}, accessToken string) (*Ceremony, error)
	DeleteCeremony(ctx context.Context, id uuid.UUID, accessToken string) error
}
