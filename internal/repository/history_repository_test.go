package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRows(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	a := testutil.User(t, db, "alice")
	b := testutil.User(t, db, "bob")
	c := testutil.User(t, db, "carol")
	module := testutil.Module(t, db, "Road signs")
	q1 := testutil.Activity(t, db, module.ID, "Quiz 1")
	q2 := testutil.Activity(t, db, module.ID, "Quiz 2")

	testutil.History(t, db, a.ID, q1.ID, 2)
	testutil.History(t, db, a.ID, q1.ID, 10)
	testutil.History(t, db, a.ID, q2.ID, 8)
	testutil.History(t, db, b.ID, q1.ID, 20)
	testutil.History(t, db, c.ID, q2.ID, 18)
	deleted := testutil.History(t, db, c.ID, q2.ID, 1)
	require.NoError(t, repo.Delete(ctx, deleted.ID))

	rows, err := repo.LeaderboardRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.LeaderboardRow{
		{UserID: b.ID, TotalScore: 20},
		{UserID: a.ID, TotalScore: 18},
		{UserID: c.ID, TotalScore: 18},
	}, rows)

	best, err := repo.MaxScores(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{q1.ID: 10, q2.ID: 8}, best)
}

func TestListByUserNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewHistoryRepository(db)
	user := testutil.User(t, db, "alice")
	module := testutil.Module(t, db, "Road signs")
	activity := testutil.Activity(t, db, module.ID, "Quiz")

	first := testutil.History(t, db, user.ID, activity.ID, 1)
	second := testutil.History(t, db, user.ID, activity.ID, 2)

	list, err := repo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	require.NotNil(t, list[0].Activity)
	assert.Equal(t, "Quiz", list[0].Activity.Title)
}

func TestLessonCountsIgnoreDeletedRows(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	modules := NewModuleRepository(db)
	lessons := NewLessonRepository(db)

	live := testutil.Module(t, db, "Live")
	gone := testutil.Module(t, db, "Gone")
	testutil.Lesson(t, db, live.ID, "a")
	dropped := testutil.Lesson(t, db, live.ID, "b")
	testutil.Lesson(t, db, gone.ID, "c")

	require.NoError(t, lessons.Delete(ctx, dropped.ID))
	require.NoError(t, modules.Delete(ctx, gone.ID))

	total, err := lessons.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	counts, err := modules.LessonCounts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[live.ID])

	ids, err := modules.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{live.ID}, ids)
}
