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

func TestSubmitBlessingPersistsAndNotifies(t *testing.T) {
	clientID := uuid.New()
	repo := &fakeBlessingRepo{}
	notifier := &fakeNotifier{}
	svc := NewBlessingService(repo, notifier)

	blessing, err := svc.SubmitBlessing(context.Background(), clientID, "  Ama  ", "Wishing you joy!")
	require.NoError(t, err)

	assert.Equal(t, "Ama", blessing.Name)
	assert.Len(t, repo.blessings, 1)
	require.Len(t, notifier.clientIDs, 1)
	assert.Equal(t, clientID.String(), notifier.clientIDs[0])
	assert.Equal(t, blessing, notifier.payloads[0])
}

func TestSubmitBlessingRequiresNameAndMessage(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewBlessingService(&fakeBlessingRepo{}, notifier)
	clientID := uuid.New()

	_, err := svc.SubmitBlessing(context.Background(), clientID, "", "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalid))

	_, err = svc.SubmitBlessing(context.Background(), clientID, "Ama", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalid))

	assert.Empty(t, notifier.clientIDs)
}

func TestSubmitBlessingSkipsNotifyOnInsertFailure(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewBlessingService(&fakeBlessingRepo{insertErr: assert.AnError}, notifier)

	_, err := svc.SubmitBlessing(context.Background(), uuid.New(), "Ama", "hello")
	require.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrInvalid))
	assert.Empty(t, notifier.clientIDs)
}

func TestListBlessingsScopedToClient(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()
	repo := &fakeBlessingRepo{blessings: []models.Blessing{
		{ID: uuid.New(), ClientID: mine, Name: "Ama", Message: "joy"},
		{ID: uuid.New(), ClientID: other, Name: "Kofi", Message: "love"},
	}}
	svc := NewBlessingService(repo, nil)

	out, err := svc.ListBlessings(context.Background(), mine)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ama", out[0].Name)
}
