package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
)

type fakeClientRepo struct {
	clients   []models.Client
	createErr error
	updates   map[string]interface{}
	lastToken string
}

func (f *fakeClientRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) GetClientByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, fmt.Errorf("client: %w", models.ErrNotFound)
}

func (f *fakeClientRepo) GetClientBySlug(ctx context.Context, slug string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].Slug == slug {
			return &f.clients[i], nil
		}
	}
	return nil, fmt.Errorf("client: %w", models.ErrNotFound)
}

func (f *fakeClientRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for i := range f.clients {
		if f.clients[i].Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) CreateClient(ctx context.Context, client *models.Client, accessToken string) (*models.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastToken = accessToken
	f.clients = append(f.clients, *client)
	return client, nil
}

func (f *fakeClientRepo) UpdateClient(ctx context.Context, id uuid.UUID, updates map[string]interface{}, accessToken string) (*models.Client, error) {
	f.updates = updates
	f.lastToken = accessToken
	return f.GetClientByID(ctx, id)
}

type fakeCeremonyRepo struct {
	ceremonies  []models.Ceremony
	inserted    []models.Ceremony
	updated     []uuid.UUID
	deleted     []uuid.UUID
	insertErrAt int // 1-based insert call that fails, 0 for never
	insertCalls int
	updateErr   error
}

func (f *fakeCeremonyRepo) ListCeremonies(ctx context.Context, clientID uuid.UUID) ([]models.Ceremony, error) {
	out := []models.Ceremony{}
	for _, c := range f.ceremonies {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCeremonyRepo) InsertCeremony(ctx context.Context, ceremony *models.Ceremony, accessToken string) (*models.Ceremony, error) {
	f.insertCalls++
	if f.insertErrAt > 0 && f.insertCalls == f.insertErrAt {
		return nil, fmt.Errorf("insert failed")
	}
	f.inserted = append(f.inserted, *ceremony)
	f.ceremonies = append(f.ceremonies, *ceremony)
	return ceremony, nil
}

func (f *fakeCeremonyRepo) UpdateCeremony(ctx context.Context, id uuid.UUID, updates map[string]interface{}, accessToken string) (*models.Ceremony, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = append(f.updated, id)
	return &models.Ceremony{ID: id}, nil
}

func (f *fakeCeremonyRepo) DeleteCeremony(ctx context.Context, id uuid.UUID, accessToken string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePhotoRepo struct {
	photos      []models.Photo
	uploaded    []string
	uploadErrAt int // 1-based upload call that fails, 0 for never
	uploadCalls int
	insertErr   error
}

func (f *fakePhotoRepo) ListPhotos(ctx context.Context, clientID uuid.UUID) ([]models.Photo, error) {
	out := []models.Photo{}
	for _, p := range f.photos {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhotoRepo) InsertPhoto(ctx context.Context, photo *models.Photo, accessToken string) (*models.Photo, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.photos = append(f.photos, *photo)
	return photo, nil
}

func (f *fakePhotoRepo) UploadObject(ctx context.Context, path, contentType string, data io.Reader, accessToken string) error {
	f.uploadCalls++
	if f.uploadErrAt > 0 && f.uploadCalls == f.uploadErrAt {
		return fmt.Errorf("upload failed")
	}
	f.uploaded = append(f.uploaded, path)
	return nil
}

func (f *fakePhotoRepo) PublicURL(path string) string {
	return "https://cdn.test/photos/" + path
}

type fakeBlessingRepo struct {
	blessings []models.Blessing
	insertErr error
}

func (f *fakeBlessingRepo) ListBlessings(ctx context.Context, clientID uuid.UUID) ([]models.Blessing, error) {
	out := []models.Blessing{}
	for _, b := range f.blessings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlessingRepo) InsertBlessing(ctx context.Context, blessing *models.Blessing) (*models.Blessing, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.blessings = append(f.blessings, *blessing)
	return blessing, nil
}

type fakeSettingsRepo struct {
	settings *models.Settings
	getErr   error
}

func (f *fakeSettingsRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.settings == nil {
		return nil, fmt.Errorf("settings: %w", models.ErrNotFound)
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) SaveSettings(ctx context.Context, settings *models.Settings, accessToken string) (*models.Settings, error) {
	f.settings = settings
	return settings, nil
}

type fakeRSVPRepo struct {
	rsvps     []models.RSVP
	insertErr error
}

func (f *fakeRSVPRepo) ListRSVPs(ctx context.Context, clientID uuid.UUID) ([]models.RSVP, error) {
	out := []models.RSVP{}
	for _, r := range f.rsvps {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRSVPRepo) InsertRSVP(ctx context.Context, rsvp *models.RSVP) (*models.RSVP, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.rsvps = append(f.rsvps, *rsvp)
	return rsvp, nil
}

type fakeVisitsRepo struct {
	counts    map[uuid.UUID]int64
	recordErr error
}

func (f *fakeVisitsRepo) RecordVisit(ctx context.Context, clientID uuid.UUID, slug string) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	if f.counts == nil {
		f.counts = make(map[uuid.UUID]int64)
	}
	f.counts[clientID]++
	return nil
}

func (f *fakeVisitsRepo) VisitCount(ctx context.Context, clientID uuid.UUID) (int64, error) {
	return f.counts[clientID], nil
}

type fakeNotifier struct {
	clientIDs []string
	payloads  []interface{}
}

func (f *fakeNotifier) NotifyBlessing(clientID string, blessing interface{}) {
	f.clientIDs = append(f.clientIDs, clientID)
	f.payloads = append(f.payloads, blessing)
}
