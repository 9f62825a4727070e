package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
)

// editTimeLayout is the wire format the admin editor exchanges dates in,
// matching an HTML datetime-local input.
const editTimeLayout = "2006-01-02T15:04"

// CeremonyDraft is one row of the admin's batch editor. A nil ID marks a
// row added in this session that has never been persisted.
type CeremonyDraft struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Title    string     `json:"title"`
	DateTime string     `json:"date_time"`
	Venue    string     `json:"venue"`
	MapURL   string     `json:"map_url,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

type CeremonyService struct {
	ceremonyRepo models.CeremonyRepo
}

func NewCeremonyService(ceremonyRepo models.CeremonyRepo) *CeremonyService {
	return &CeremonyService{
		ceremonyRepo: ceremonyRepo,
	}
}

func (cs *CeremonyService) ListCeremonies(ctx context.Context, clientID uuid.UUID) ([]models.Ceremony, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client ID")
	}

	return cs.ceremonyRepo.ListCeremonies(ctx, clientID)
}

// ListForEdit returns a client's ceremonies as editor drafts, with dates
// formatted back to the editor's local-time layout.
func (cs *CeremonyService) ListForEdit(ctx context.Context, clientID uuid.UUID) ([]CeremonyDraft, error) {
	ceremonies, err := cs.ListCeremonies(ctx, clientID)
	if err != nil {
		return nil, err
	}

	drafts := make([]CeremonyDraft, 0, len(ceremonies))
	for _, c := range ceremonies {
		id := c.ID
		drafts = append(drafts, CeremonyDraft{
			ID:       &id,
			Title:    c.Title,
			DateTime: c.DateTime.In(time.Local).Format(editTimeLayout),
			Venue:    c.Venue,
			MapURL:   c.MapURL,
			Notes:    c.Notes,
		})
	}
	return drafts, nil
}

func (cs *CeremonyService) validateDraft(draft CeremonyDraft) (time.Time, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return time.Time{}, fmt.Errorf("title cannot be empty")
	}
	if strings.TrimSpace(draft.Venue) == "" {
		return time.Time{}, fmt.Errorf("venue cannot be empty")
	}
	when, err := time.ParseInLocation(editTimeLayout, draft.DateTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date_time %q: expected %s", draft.DateTime, editTimeLayout)
	}
	return when, nil
}

// SaveAll persists an editor batch row by row: drafts without an id are
// inserted, the rest updated. It stops at the first failure and reports
// how many rows were applied before it, so the editor can retry the
// remainder without duplicating the saved ones.
func (cs *CeremonyService) SaveAll(ctx context.Context, clientID uuid.UUID, drafts []CeremonyDraft, accessToken string) (int, error) {
	if clientID == uuid.Nil {
		return 0, fmt.Errorf("invalid client ID")
	}

	applied := 0
	for i, draft := range drafts {
		when, err := cs.validateDraft(draft)
		if err != nil {
			return applied, fmt.Errorf("row %d: %w", i+1, err)
		}

		if draft.ID == nil || *draft.ID == uuid.Nil {
			ceremony := &models.Ceremony{
				ID:        uuid.New(),
				ClientID:  clientID,
				Title:     draft.Title,
				DateTime:  when,
				Venue:     draft.Venue,
				MapURL:    draft.MapURL,
				Notes:     draft.Notes,
				CreatedAt: time.Now(),
			}
			if _, err := cs.ceremonyRepo.InsertCeremony(ctx, ceremony, accessToken); err != nil {
				return applied, fmt.Errorf("row %d: %w", i+1, err)
			}
		} else {
			updates := map[string]interface{}{
				"title":     draft.Title,
				"date_time": when,
				"venue":     draft.Venue,
				"map_url":   draft.MapURL,
				"notes":     draft.Notes,
			}
			if _, err := cs.ceremonyRepo.UpdateCeremony(ctx, *draft.ID, updates, accessToken); err != nil {
				return applied, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		applied++
	}

	return applied, nil
}

func (cs *CeremonyService) DeleteCeremony(ctx context.Context, id uuid.UUID, accessToken string) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid ceremony ID")
	}

	return cs.ceremonyRepo.DeleteCeremony(ctx, id, accessToken)
}
