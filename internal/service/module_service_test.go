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

func TestProgressLabel(t *testing.T) {
	tests := []struct {
		completed, total int64
		want             string
	}{
		{0, 0, "0%"},
		{0, 4, "0%"},
		{1, 2, "50%"},
		{1, 3, "33.33%"},
		{2, 3, "66.67%"},
		{1, 8, "12.5%"},
		{3, 3, "100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, progressLabel(tt.completed, tt.total), "%d/%d", tt.completed, tt.total)
	}
}

func TestModuleViewsCarryUserProgress(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	bookmarks := repository.NewBookmarkRepository(db)
	svc := NewModuleService(
		repository.NewModuleRepository(db),
		repository.NewUserLessonRepository(db),
		bookmarks,
		nil,
	)
	progress := newProgressService(db)

	alice := testutil.User(t, db, "alice")
	bob := testutil.User(t, db, "bob")
	signs := testutil.Module(t, db, "Road signs")
	first := testutil.Lesson(t, db, signs.ID, "Stop")
	testutil.Lesson(t, db, signs.ID, "Yield")
	testutil.Lesson(t, db, signs.ID, "Merge")
	testutil.Module(t, db, "Parking")

	_, err := progress.TrackLesson(ctx, alice.ID, first.ID, 30)
	require.NoError(t, err)
	on, err := bookmarks.Toggle(ctx, alice.ID, signs.ID)
	require.NoError(t, err)
	require.True(t, on)

	views, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].IsBookmarked)
	assert.Equal(t, "33.33%", views[0].Progress.Progress)
	assert.EqualValues(t, 1, views[0].Progress.CompletedLessons)
	assert.EqualValues(t, 3, views[0].Progress.TotalLessons)
	assert.False(t, views[1].IsBookmarked)
	assert.Equal(t, "0%", views[1].Progress.Progress)

	view, err := svc.Show(ctx, bob.ID, signs.ID)
	require.NoError(t, err)
	assert.False(t, view.IsBookmarked)
	assert.EqualValues(t, 0, view.Progress.CompletedLessons)

	_, err = svc.Show(ctx, bob.ID, 999)
	assert.True(t, errors.Is(err, util.ErrModuleNotFound))
}

func TestBookmarkToggle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewBookmarkService(repository.NewBookmarkRepository(db), repository.NewModuleRepository(db))
	user := testutil.User(t, db, "alice")
	module := testutil.Module(t, db, "Road signs")

	on, err := svc.Toggle(ctx, user.ID, module.ID)
	require.NoError(t, err)
	assert.True(t, on)

	list, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Module)
	assert.Equal(t, "Road signs", list[0].Module.Title)

	on, err = svc.Toggle(ctx, user.ID, module.ID)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = svc.Toggle(ctx, user.ID, 999)
	assert.True(t, errors.Is(err, util.ErrModuleNotFound))
}
