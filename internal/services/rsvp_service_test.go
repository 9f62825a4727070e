package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRSVPPersistsReply(t *testing.T) {
	clientID := uuid.New()
	repo := &fakeRSVPRepo{}
	svc := NewRSVPService(repo)

	rsvp, err := svc.SubmitRSVP(context.Background(), clientID, "  Ama  ", "ama@example.com", " YES ", "See you there!")
	require.NoError(t, err)

	assert.Equal(t, "Ama", rsvp.Name)
	assert.Equal(t, "yes", rsvp.Response)
	assert.Equal(t, clientID, rsvp.ClientID)
	assert.NotEqual(t, uuid.Nil, rsvp.ID)
	assert.Len(t, repo.rsvps, 1)
}

func TestSubmitRSVPValidatesInput(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{})
	clientID := uuid.New()

	cases := []struct {
		name, email, response string
	}{
		{"", "", "yes"},
		{"Ama", "", "attending"},
		{"Ama", "not-an-email", "yes"},
		{"Ama", "", ""},
	}
	for _, c := range cases {
		_, err := svc.SubmitRSVP(context.Background(), clientID, c.name, c.email, c.response, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrInvalid))
	}
}

func TestSubmitRSVPEmailOptional(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{})

	rsvp, err := svc.SubmitRSVP(context.Background(), uuid.New(), "Kofi", "", "maybe", "")
	require.NoError(t, err)
	assert.Empty(t, rsvp.Email)
}

func TestSubmitRSVPInsertFailureIsNotValidation(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{insertErr: assert.AnError})

	_, err := svc.SubmitRSVP(context.Background(), uuid.New(), "Ama", "", "no", "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrInvalid))
}

func TestListRSVPsScopedToClient(t *testing.T) {
	mine := uuid.New()
	repo := &fakeRSVPRepo{rsvps: []models.RSVP{
		{ID: uuid.New(), ClientID: mine, Name: "Ama", Response: "yes"},
		{ID: uuid.New(), ClientID: uuid.New(), Name: "Kofi", Response: "no"},
	}}
	svc := NewRSVPService(repo)

	out, err := svc.ListRSVPs(context.Background(), mine)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ama", out[0].Name)
}
