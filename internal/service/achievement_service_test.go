package service

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAchievementService(db *gorm.DB, mastery int) *AchievementService {
	return NewAchievementService(
		repository.NewModuleRepository(db),
		repository.NewActivityRepository(db),
		repository.NewUserLessonRepository(db),
		repository.NewHistoryRepository(db),
		mastery,
	)
}

func TestAchievementsEmptyCatalogue(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.User(t, db, "alice")

	badges, err := newAchievementService(db, 14).Achievements(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, badges)
}

func TestAchievementsProgression(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newAchievementService(db, 2)
	progress := newProgressService(db)
	user := testutil.User(t, db, "alice")

	module := testutil.Module(t, db, "Road signs")
	require.EqualValues(t, 1, module.ID)
	lessons := []*model.Lesson{
		testutil.Lesson(t, db, module.ID, "Stop"),
		testutil.Lesson(t, db, module.ID, "Yield"),
	}
	testutil.Module(t, db, "Coming soon")
	activity := testutil.Activity(t, db, module.ID, "Signs quiz")
	require.EqualValues(t, 1, activity.ID)

	badges, err := svc.Achievements(ctx, user.ID)
	require.NoError(t, err)
	// the lesson-less module counts as complete from the start
	assert.Equal(t, []model.Badge{model.ModuleBadges[2]}, badges)

	for _, lesson := range lessons {
		_, err := progress.TrackLesson(ctx, user.ID, lesson.ID, 10)
		require.NoError(t, err)
	}
	badges, err = svc.Achievements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Badge{
		model.ModuleBadges[1],
		model.ModuleBadges[2],
		model.BadgeRoadScholar,
	}, badges)

	testutil.History(t, db, user.ID, activity.ID, 1)
	badges, err = svc.Achievements(ctx, user.ID)
	require.NoError(t, err)
	assert.NotContains(t, badges, model.BadgeMastermind)

	// the best attempt counts, even when a later one scores lower
	testutil.History(t, db, user.ID, activity.ID, 2)
	testutil.History(t, db, user.ID, activity.ID, 0)
	badges, err = svc.Achievements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Badge{
		model.ModuleBadges[1],
		model.ModuleBadges[2],
		model.BadgeRoadScholar,
		model.ActivityBadges[1],
		model.BadgeMastermind,
		model.BadgeKingOfTheRoad,
	}, badges)
}

func TestAchievementsAreIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newAchievementService(db, 1)
	user := testutil.User(t, db, "alice")
	module := testutil.Module(t, db, "Road signs")
	testutil.Lesson(t, db, module.ID, "Stop")
	activity := testutil.Activity(t, db, module.ID, "Quiz")
	testutil.History(t, db, user.ID, activity.ID, 3)

	first, err := svc.Achievements(ctx, user.ID)
	require.NoError(t, err)
	second, err := svc.Achievements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, model.BadgeMastermind)
	assert.NotContains(t, first, model.BadgeRoadScholar)
}
