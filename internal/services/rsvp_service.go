package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
)

type RSVPService struct {
	rsvpRepo models.RSVPRepo
}

func NewRSVPService(rsvpRepo models.RSVPRepo) *RSVPService {
	return &RSVPService{
		rsvpRepo: rsvpRepo,
	}
}

func (rs *RSVPService) ListRSVPs(ctx context.Context, clientID uuid.UUID) ([]models.RSVP, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client ID")
	}

	return rs.rsvpRepo.ListRSVPs(ctx, clientID)
}

// SubmitRSVP records a visitor's reply. The response must be one of
// yes, no or maybe; name is required, email and message are optional.
func (rs *RSVPService) SubmitRSVP(ctx context.Context, clientID uuid.UUID, name, email, response, message string) (*models.RSVP, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid client ID", models.ErrInvalid)
	}

	rsvp := &models.RSVP{
		ID:        uuid.New(),
		ClientID:  clientID,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Response:  strings.ToLower(strings.TrimSpace(response)),
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now(),
	}
	if err := models.Validate.Struct(rsvp); err != nil {
		return nil, fmt.Errorf("%w: name and a yes/no/maybe response are required", models.ErrInvalid)
	}

	return rs.rsvpRepo.InsertRSVP(ctx, rsvp)
}
