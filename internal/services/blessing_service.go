package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
)

// BlessingNotifier receives every freshly persisted blessing so live
// viewers of the invitation see it without reloading.
type BlessingNotifier interface {
	NotifyBlessing(clientID string, blessing interface{})
}

type BlessingService struct {
	blessingRepo models.BlessingRepo
	notifier     BlessingNotifier
}

func NewBlessingService(blessingRepo models.BlessingRepo, notifier BlessingNotifier) *BlessingService {
	return &BlessingService{
		blessingRepo: blessingRepo,
		notifier:     notifier,
	}
}

func (bs *BlessingService) ListBlessings(ctx context.Context, clientID uuid.UUID) ([]models.Blessing, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client ID")
	}

	return bs.blessingRepo.ListBlessings(ctx, clientID)
}

// SubmitBlessing persists a visitor's guestbook entry and pushes it to
// live viewers. Entries are append-only.
func (bs *BlessingService) SubmitBlessing(ctx context.Context, clientID uuid.UUID, name, message string) (*models.Blessing, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid client ID", models.ErrInvalid)
	}
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	blessing := &models.Blessing{
		ID:        uuid.New(),
		ClientID:  clientID,
		Name:      name,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := models.Validate.Struct(blessing); err != nil {
		return nil, fmt.Errorf("%w: name and message are both required", models.ErrInvalid)
	}

	inserted, err := bs.blessingRepo.InsertBlessing(ctx, blessing)
	if err != nil {
		return nil, err
	}

	if bs.notifier != nil {
		bs.notifier.NotifyBlessing(inserted.ClientID.String(), inserted)
	}
	return inserted, nil
}
