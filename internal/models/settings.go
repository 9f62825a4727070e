package models

import (
	"context"

	"github.com/google/uuid"
)

// Settings is the global company record shown in every invitation footer.
// At most one row is expected to exist.
type Settings struct {
	ID             uuid.UUID `db:"id" json:"id,omitempty"`
	CompanyName    string    `db:"company_name" json:"company_name"`
	CompanyPhone   string    `db:"company_phone" json:"company_phone,omitempty"`
	CompanyEmail   string    `db:"company_email" json:"company_email,omitempty" validate:"omitempty,email"`
	CompanyWebsite string    `db:"company_website" json:"company_website,omitempty" validate:"omitempty,url"`
	CompanyAddress string    `db:"company_address" json:"company_address,omitempty"`
}

type SettingsRepo interface {
	// GetSettings returns the singleton row, or ErrNotFound when it has
	// never been saved.
	GetSettings(ctx context.Context) (*Settings, error)
	// SaveSettings updates the existing row if there is one, otherwise
	// inserts it.
	SaveSettings(ctx context.Context, settings *Settings, accessToken string) (*Settings, error)
}
