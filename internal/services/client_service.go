package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/helpers"
	"github.com/inviteleaf/api/internal/invite"
	"github.com/inviteleaf/api/internal/models"
)

type ClientService struct {
	clientRepo models.ClientRepo
}

func NewClientService(clientRepo models.ClientRepo) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

func (cs *ClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return cs.clientRepo.ListClients(ctx)
}

func (cs *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid client ID")
	}

	return cs.clientRepo.GetClientByID(ctx, id)
}

func (cs *ClientService) GetClientBySlug(ctx context.Context, slug string) (*models.Client, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("slug cannot be empty")
	}

	return cs.clientRepo.GetClientBySlug(ctx, slug)
}

// CreateClient inserts a new couple. A missing slug is derived from the
// couple name; a taken slug gets a short random suffix instead of
// failing the create.
func (cs *ClientService) CreateClient(ctx context.Context, client *models.Client, accessToken string) (*models.Client, error) {
	if err := models.Validate.Struct(client); err != nil {
		return nil, fmt.Errorf("invalid client data provided: %v", err)
	}

	if strings.TrimSpace(client.Slug) == "" {
		client.Slug = helpers.Slugify(client.CoupleName)
	} else {
		client.Slug = helpers.Slugify(client.Slug)
	}
	if client.Slug == "" {
		return nil, fmt.Errorf("could not derive a slug from the couple name")
	}

	taken, err := cs.clientRepo.SlugExists(ctx, client.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		client.Slug = client.Slug + "-" + helpers.RandomSlugSuffix()
	}

	client.TemplateID = string(invite.NormalizeTemplate(client.TemplateID))
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now()

	return cs.clientRepo.CreateClient(ctx, client, accessToken)
}

func (cs *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, updates map[string]interface{}, accessToken string) (*models.Client, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid client ID")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no updates provided")
	}

	if tmpl, ok := updates["template_id"]; ok {
		name, ok := tmpl.(string)
		if !ok || !invite.ValidTemplate(name) {
			return nil, fmt.Errorf("unknown template: %v", tmpl)
		}
	}
	// Slugs stay editable after creation, same rules as create: slugified,
	// and never stolen from another client.
	if raw, ok := updates["slug"]; ok {
		slug, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("invalid slug: %v", raw)
		}
		slug = helpers.Slugify(slug)
		if slug == "" {
			return nil, fmt.Errorf("slug cannot be empty")
		}
		owner, err := cs.clientRepo.GetClientBySlug(ctx, slug)
		switch {
		case err == nil:
			if owner.ID != id {
				return nil, fmt.Errorf("slug %q is already in use", slug)
			}
		case errors.Is(err, models.ErrNotFound):
		default:
			return nil, err
		}
		updates["slug"] = slug
	}
	delete(updates, "id")

	if len(updates) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	return cs.clientRepo.UpdateClient(ctx, id, updates, accessToken)
}
