package service

import (
	"context"
	"errors"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/testutil"
	"road_scholar_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewFeedbackService(repository.NewFeedbackRepository(db))
	user := testutil.User(t, db, "reviewer")

	rating := 4
	created, err := svc.Create(ctx, user.ID, &FeedbackRequest{Rating: &rating, Comment: "clear lessons"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.UserID)

	got, err := svc.Show(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "reviewer", got.User.Username)
	assert.Equal(t, 4, *got.Rating)

	updated, err := svc.Update(ctx, created.ID, &FeedbackRequest{Comment: "call me", FollowUp: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Rating)
	assert.True(t, updated.FollowUp)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Show(ctx, created.ID)
	assert.True(t, errors.Is(err, util.ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(ctx, created.ID), util.ErrNotFound))
}
