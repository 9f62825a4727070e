package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/helpers"
	"github.com/inviteleaf/api/internal/invite"
	"github.com/inviteleaf/api/internal/models"
)

// CeremonyView is a ceremony enriched with its add-to-calendar link.
type CeremonyView struct {
	models.Ceremony
	CalendarURL string `json:"calendar_url"`
}

// PhotoView is a photo with its public URL resolved.
type PhotoView struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// InviteView is everything the public invitation page needs in one
// payload: the couple, their schedule, gallery, the template's layout
// and the guestbook theme.
type InviteView struct {
	CoupleName  string              `json:"couple_name"`
	Slug        string              `json:"slug"`
	Template    string              `json:"template"`
	Layout      invite.RenderConfig `json:"layout"`
	Theme       invite.Theme        `json:"theme"`
	WeddingDate string              `json:"wedding_date,omitempty"`
	Countdown   *invite.TimeLeft    `json:"countdown,omitempty"`
	Ceremonies  []CeremonyView      `json:"ceremonies"`
	Photos      []PhotoView         `json:"photos"`
	Footer      *models.Settings    `json:"footer,omitempty"`
}

type InviteService struct {
	clientRepo   models.ClientRepo
	ceremonyRepo models.CeremonyRepo
	photoRepo    models.PhotoRepo
	settingsRepo models.SettingsRepo
	visitsRepo   models.VisitsRepo
	logger       *slog.Logger
}

func NewInviteService(clientRepo models.ClientRepo, ceremonyRepo models.CeremonyRepo, photoRepo models.PhotoRepo, settingsRepo models.SettingsRepo, visitsRepo models.VisitsRepo, logger *slog.Logger) *InviteService {
	return &InviteService{
		clientRepo:   clientRepo,
		ceremonyRepo: ceremonyRepo,
		photoRepo:    photoRepo,
		settingsRepo: settingsRepo,
		visitsRepo:   visitsRepo,
		logger:       logger,
	}
}

// GetInvite assembles the public page for a slug. The earliest upcoming
// ceremony drives the wedding date and countdown; the footer is dropped
// rather than failing the page when settings cannot be read.
func (is *InviteService) GetInvite(ctx context.Context, slug string) (*InviteView, error) {
	client, err := is.clientRepo.GetClientBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	template := invite.NormalizeTemplate(client.TemplateID)
	view := &InviteView{
		CoupleName: client.CoupleName,
		Slug:       client.Slug,
		Template:   string(template),
		Layout:     invite.ConfigFor(template),
		Theme:      invite.ThemeFor(template),
		Ceremonies: []CeremonyView{},
		Photos:     []PhotoView{},
	}

	ceremonies, err := is.ceremonyRepo.ListCeremonies(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range ceremonies {
		view.Ceremonies = append(view.Ceremonies, CeremonyView{
			Ceremony:    c,
			CalendarURL: invite.CalendarLink(client.CoupleName+" - "+c.Title, c.DateTime, c.Venue, c.Notes),
		})
	}
	if main := mainCeremony(ceremonies); main != nil {
		view.WeddingDate = helpers.FormatWeddingDate(main.DateTime)
		if left, ok := invite.TimeUntil(main.DateTime, time.Now()); ok {
			view.Countdown = &left
		}
	}

	photos, err := is.photoRepo.ListPhotos(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range photos {
		view.Photos = append(view.Photos, PhotoView{
			ID:  p.ID.String(),
			URL: is.photoRepo.PublicURL(p.StoragePath),
		})
	}

	if settings, err := is.settingsRepo.GetSettings(ctx); err == nil {
		view.Footer = settings
	} else if is.logger != nil {
		is.logger.Warn("Serving invite without footer", "slug", slug, "error", err)
	}

	if is.visitsRepo != nil {
		if err := is.visitsRepo.RecordVisit(ctx, client.ID, client.Slug); err != nil && is.logger != nil {
			is.logger.Warn("Failed to record invite visit", "slug", slug, "error", err)
		}
	}

	return view, nil
}

// MainCeremonyDate reports the date of the slug's first ceremony, used
// by the live channel to stream countdown frames.
func (is *InviteService) MainCeremonyDate(ctx context.Context, slug string) (*models.Client, *time.Time, error) {
	client, err := is.clientRepo.GetClientBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	ceremonies, err := is.ceremonyRepo.ListCeremonies(ctx, client.ID)
	if err != nil {
		return nil, nil, err
	}
	if main := mainCeremony(ceremonies); main != nil {
		when := main.DateTime
		return client, &when, nil
	}
	return client, nil, nil
}

// mainCeremony picks the ceremony that anchors the page: the list is
// ordered by date ascending, so the first entry is it.
func mainCeremony(ceremonies []models.Ceremony) *models.Ceremony {
	if len(ceremonies) == 0 {
		return nil
	}
	return &ceremonies[0]
}

func (is *InviteService) VisitCount(ctx context.Context, clientID uuid.UUID) (int64, error) {
	if clientID == uuid.Nil {
		return 0, fmt.Errorf("invalid client ID")
	}
	if is.visitsRepo == nil {
		return 0, nil
	}
	return is.visitsRepo.VisitCount(ctx, clientID)
}
