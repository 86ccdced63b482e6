package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestNoopLeaderboardCache(t *testing.T) {
	cache := NewLeaderboardCache(nil, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, 0, []model.LeaderboardRow{{UserID: 1, TotalScore: 3}})
	rows, generation, ok := cache.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, rows)
	assert.Zero(t, generation)
	cache.Invalidate(ctx)
	cache.SetTTL(time.Second)
}

func TestRedisLeaderboardCacheDegradesWhenUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	cache := NewLeaderboardCache(rdb, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, 0, []model.LeaderboardRow{{UserID: 1, TotalScore: 3}})
	_, _, ok := cache.Get(ctx)
	assert.False(t, ok)
	cache.Invalidate(ctx)
}

func TestParseGeneration(t *testing.T) {
	generation, err := parseGeneration(nil)
	assert.NoError(t, err)
	assert.Zero(t, generation)

	generation, err = parseGeneration("42")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), generation)

	_, err = parseGeneration("not-a-number")
	assert.Error(t, err)
}
