package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/invite"
	"github.com/inviteleaf/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inviteFixture() (*fakeClientRepo, *fakeCeremonyRepo, *fakePhotoRepo, *fakeSettingsRepo, *fakeVisitsRepo, uuid.UUID) {
	clientID := uuid.New()
	clients := &fakeClientRepo{clients: []models.Client{
		{ID: clientID, CoupleName: "John & Jane", Slug: "john-&-jane", TemplateID: "romantic"},
	}}
	ceremonies := &fakeCeremonyRepo{ceremonies: []models.Ceremony{
		{ID: uuid.New(), ClientID: clientID, Title: "Wedding Ceremony", DateTime: time.Now().Add(48 * time.Hour), Venue: "St. Mary's"},
		{ID: uuid.New(), ClientID: clientID, Title: "Reception", DateTime: time.Now().Add(52 * time.Hour), Venue: "Grand Hall"},
	}}
	photos := &fakePhotoRepo{photos: []models.Photo{
		{ID: uuid.New(), ClientID: clientID, StoragePath: "john-&-jane/abc.jpg", Filename: "abc.jpg"},
	}}
	settings := &fakeSettingsRepo{settings: &models.Settings{CompanyName: "InviteLeaf"}}
	visits := &fakeVisitsRepo{}
	return clients, ceremonies, photos, settings, visits, clientID
}

func TestGetInviteComposesView(t *testing.T) {
	clients, ceremonies, photos, settings, visits, clientID := inviteFixture()
	svc := NewInviteService(clients, ceremonies, photos, settings, visits, nil)

	view, err := svc.GetInvite(context.Background(), "john-&-jane")
	require.NoError(t, err)

	assert.Equal(t, "John & Jane", view.CoupleName)
	assert.Equal(t, "romantic", view.Template)
	assert.NotContains(t, view.Layout.Sections, invite.SectionCountdown)
	assert.Contains(t, view.Layout.Sections, invite.SectionBlessings)
	assert.NotEmpty(t, view.Theme.Board)

	require.Len(t, view.Ceremonies, 2)
	assert.Contains(t, view.Ceremonies[0].CalendarURL, "calendar.google.com")
	assert.Contains(t, view.Ceremonies[0].CalendarURL, "John+%26+Jane")

	require.Len(t, view.Photos, 1)
	assert.Equal(t, "https://cdn.test/photos/john-&-jane/abc.jpg", view.Photos[0].URL)

	require.NotNil(t, view.Countdown)
	assert.NotEmpty(t, view.WeddingDate)

	require.NotNil(t, view.Footer)
	assert.Equal(t, "InviteLeaf", view.Footer.CompanyName)

	assert.Equal(t, int64(1), visits.counts[clientID])
}

func TestGetInviteUnknownSlug(t *testing.T) {
	clients, ceremonies, photos, settings, visits, _ := inviteFixture()
	svc := NewInviteService(clients, ceremonies, photos, settings, visits, nil)

	_, err := svc.GetInvite(context.Background(), "nobody")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestGetInviteFallsBackToSimpleTemplate(t *testing.T) {
	clients, ceremonies, photos, settings, visits, clientID := inviteFixture()
	clients.clients[0].TemplateID = "discontinued"
	svc := NewInviteService(clients, ceremonies, photos, settings, visits, nil)

	view, err := svc.GetInvite(context.Background(), "john-&-jane")
	require.NoError(t, err)
	assert.Equal(t, "simple", view.Template)
	_ = clientID
}

func TestGetInviteOmitsFooterWhenSettingsUnavailable(t *testing.T) {
	clients, ceremonies, photos, _, visits, _ := inviteFixture()
	svc := NewInviteService(clients, ceremonies, photos, &fakeSettingsRepo{getErr: assert.AnError}, visits, nil)

	view, err := svc.GetInvite(context.Background(), "john-&-jane")
	require.NoError(t, err)
	assert.Nil(t, view.Footer)
}

func TestGetInviteSurvivesVisitRecordingFailure(t *testing.T) {
	clients, ceremonies, photos, settings, _, _ := inviteFixture()
	svc := NewInviteService(clients, ceremonies, photos, settings, &fakeVisitsRepo{recordErr: assert.AnError}, nil)

	_, err := svc.GetInvite(context.Background(), "john-&-jane")
	assert.NoError(t, err)
}

func TestGetInviteWithoutCeremonies(t *testing.T) {
	clients, _, photos, settings, visits, _ := inviteFixture()
	svc := NewInviteService(clients, &fakeCeremonyRepo{}, photos, settings, visits, nil)

	view, err := svc.GetInvite(context.Background(), "john-&-jane")
	require.NoError(t, err)
	assert.Nil(t, view.Countdown)
	assert.Empty(t, view.WeddingDate)
	assert.Empty(t, view.Ceremonies)
}
