package service

import (
	"context"
	"errors"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/testutil"
	"road_scholar_backend/internal/util"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewHistoryRepository(db),
		repository.NewUserLessonRepository(db),
		repository.NewLessonRepository(db),
		repository.NewUserRepository(db),
		repository.NewLeaderboardCache(nil, 0),
	)
}

func TestStandingUsesLatestAttemptPerActivity(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newProgressService(db)

	a := testutil.User(t, db, "alice")
	b := testutil.User(t, db, "bob")
	c := testutil.User(t, db, "carol")
	module := testutil.Module(t, db, "Road signs")
	first := testutil.Activity(t, db, module.ID, "Quiz 1")
	second := testutil.Activity(t, db, module.ID, "Quiz 2")

	testutil.History(t, db, a.ID, first.ID, 14) // superseded by the retake below
	testutil.History(t, db, a.ID, first.ID, 10)
	testutil.History(t, db, a.ID, second.ID, 8)
	testutil.History(t, db, b.ID, first.ID, 20)

	standing, err := svc.Standing(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaderboardStanding{Rank: 1, TotalScore: 20, TotalRanks: 2}, *standing)

	standing, err = svc.Standing(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaderboardStanding{Rank: 2, TotalScore: 18, TotalRanks: 2}, *standing)

	standing, err = svc.Standing(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaderboardStanding{Rank: 0, TotalScore: 0, TotalRanks: 2}, *standing)
}

func TestStandingTiesBreakByUserID(t *testing.T) {
	rows := []model.LeaderboardRow{{UserID: 3, TotalScore: 9}, {UserID: 5, TotalScore: 9}}
	assert.Equal(t, 1, standingOf(rows, 3).Rank)
	assert.Equal(t, 2, standingOf(rows, 5).Rank)
	assert.Equal(t, 0, standingOf(nil, 5).TotalRanks)

	outsider := standingOf(rows, 7)
	assert.Equal(t, 0, outsider.Rank)
	assert.Equal(t, 2, outsider.TotalRanks)
}

// generationCache mirrors the redis cache's contract in memory.
type generationCache struct {
	mu         sync.Mutex
	rows       []model.LeaderboardRow
	cached     bool
	generation uint64
}

func (c *generationCache) Get(context.Context) ([]model.LeaderboardRow, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows, c.generation, c.cached
}

func (c *generationCache) Set(_ context.Context, generation uint64, rows []model.LeaderboardRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.rows, c.cached = rows, true
}

func (c *generationCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.rows, c.cached = nil, false
}

func (c *generationCache) SetTTL(time.Duration) {}

func TestStandingDoesNotCacheRowsReadBeforeInvalidation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cache := &generationCache{}
	svc := newProgressService(db)
	svc.Leaderboard = cache

	alice := testutil.User(t, db, "alice")
	bob := testutil.User(t, db, "bob")
	module := testutil.Module(t, db, "Road signs")
	quiz := testutil.Activity(t, db, module.ID, "Quiz 1")
	testutil.History(t, db, alice.ID, quiz.ID, 10)

	// a grading commit lands while the leaderboard query is in flight
	fired := false
	err := db.Callback().Query().After("gorm:query").Register("test:grade_during_read", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "activity_histories" {
			return
		}
		fired = true
		late := &model.ActivityHistory{UserID: bob.ID, ActivityID: quiz.ID, Score: 12, IsCompleted: true}
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Create(late).Error)
		cache.Invalidate(ctx)
	})
	require.NoError(t, err)

	_, err = svc.Standing(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, fired)
	_, _, cached := cache.Get(ctx)
	assert.False(t, cached, "rows read before the write must not be cached")

	standing, err := svc.Standing(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaderboardStanding{Rank: 1, TotalScore: 12, TotalRanks: 2}, *standing)

	_, _, cached = cache.Get(ctx)
	assert.True(t, cached)
}

func TestEngagement(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newProgressService(db)
	user := testutil.User(t, db, "alice")

	engagement, err := svc.Engagement(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Engagement{}, *engagement)

	module := testutil.Module(t, db, "Road signs")
	var lessons []*model.Lesson
	for i := 0; i < 10; i++ {
		lessons = append(lessons, testutil.Lesson(t, db, module.ID, "Lesson"))
	}
	for _, lesson := range lessons[:5] {
		_, err := svc.TrackLesson(ctx, user.ID, lesson.ID, 60)
		require.NoError(t, err)
	}
	// viewing a lesson twice does not count twice
	_, err = svc.TrackLesson(ctx, user.ID, lessons[0].ID, 60)
	require.NoError(t, err)

	engagement, err = svc.Engagement(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Engagement{TotalLessons: 10, CompletedLessons: 5, OverallEngagement: 50}, *engagement)
}

func TestTrackLessonAccumulates(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newProgressService(db)
	user := testutil.User(t, db, "alice")
	module := testutil.Module(t, db, "Road signs")
	lesson := testutil.Lesson(t, db, module.ID, "Stop signs")

	row, err := svc.TrackLesson(ctx, user.ID, lesson.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, row.Duration)
	assert.Equal(t, module.ID, row.ModuleID)

	row, err = svc.TrackLesson(ctx, user.ID, lesson.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 50, row.Duration)

	var rows int64
	require.NoError(t, db.Model(&model.UserLesson{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	_, err = svc.TrackLesson(ctx, user.ID, 999, 10)
	assert.True(t, errors.Is(err, util.ErrLessonNotFound))
	_, err = svc.TrackLesson(ctx, user.ID, lesson.ID, -5)
	assert.True(t, errors.Is(err, util.ErrValidation))
}

func TestModuleHours(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newProgressService(db)
	user := testutil.User(t, db, "alice")
	module := testutil.Module(t, db, "Road signs")

	hours, err := svc.ModuleHours(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "00h 00m", hours.FormattedTime)

	for _, seconds := range []int{3600, 1500, 59} {
		lesson := testutil.Lesson(t, db, module.ID, "Lesson")
		_, err := svc.TrackLesson(ctx, user.ID, lesson.ID, seconds)
		require.NoError(t, err)
	}

	hours, err = svc.ModuleHours(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ModuleHours{
		TotalSeconds:  5159,
		TotalHours:    1,
		TotalMinutes:  25,
		FormattedTime: "01h 25m",
	}, *hours)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(0, 0))
	assert.Equal(t, 50, percent(5, 10))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 100, percent(4, 4))
}

func TestUpdateAndDeleteHistory(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newProgressService(db)
	user := testutil.User(t, db, "alice")
	module := testutil.Module(t, db, "Road signs")
	activity := testutil.Activity(t, db, module.ID, "Quiz")
	history := testutil.History(t, db, user.ID, activity.ID, 4)

	score := 9
	updated, err := svc.UpdateHistory(ctx, history.ID, &UpdateHistoryRequest{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Score)
	assert.True(t, updated.IsCompleted)

	// unchanged values are not a miss
	updated, err = svc.UpdateHistory(ctx, history.ID, &UpdateHistoryRequest{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Score)

	_, err = svc.UpdateHistory(ctx, 999, &UpdateHistoryRequest{Score: &score})
	assert.True(t, errors.Is(err, util.ErrHistoryNotFound))

	require.NoError(t, svc.DeleteHistory(ctx, history.ID))
	assert.True(t, errors.Is(svc.DeleteHistory(ctx, history.ID), util.ErrHistoryNotFound))

	list, err := svc.History(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.HistoryOf(ctx, 999)
	assert.True(t, errors.Is(err, util.ErrUserNotFound))
}
