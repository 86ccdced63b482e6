package repository

import (
	"context"
	"encoding/json"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/pkg/logger"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardKey           = "road_scholar:leaderboard"
	leaderboardGenerationKey = "road_scholar:leaderboard:generation"
)

// setIfGeneration stores the leaderboard only while the generation is unchanged.
var setIfGeneration = redis.NewScript(`
if (redis.call("GET", KEYS[2]) or "0") == ARGV[1] then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
	return 1
end
return 0
`)

// LeaderboardCache holds the ranked leaderboard between writes to history.
// Get reports the generation it observed; Set is dropped when Invalidate has
// run since, so rows read before a write are never cached after it.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]model.LeaderboardRow, uint64, bool)
	Set(ctx context.Context, generation uint64, rows []model.LeaderboardRow)
	Invalidate(ctx context.Context)
	SetTTL(ttl time.Duration)
}

// NewLeaderboardCache returns a redis backed cache, or a no-op one when rdb is nil.
func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration) LeaderboardCache {
	if rdb == nil {
		return noopLeaderboardCache{}
	}
	c := &redisLeaderboardCache{Redis: rdb}
	c.SetTTL(ttl)
	return c
}

type redisLeaderboardCache struct {
	Redis *redis.Client
	ttl   atomic.Int64
}

func (c *redisLeaderboardCache) Get(ctx context.Context) ([]model.LeaderboardRow, uint64, bool) {
	vals, err := c.Redis.MGet(ctx, leaderboardKey, leaderboardGenerationKey).Result()
	if err != nil {
		logger.Log.Warn("Leaderboard cache read failed", zap.Error(err))
		return nil, 0, false
	}

	generation, err := parseGeneration(vals[1])
	if err != nil {
		logger.Log.Warn("Leaderboard generation is corrupt", zap.Error(err))
		return nil, 0, false
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, generation, false
	}

	var rows []model.LeaderboardRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		logger.Log.Warn("Leaderboard cache entry is corrupt", zap.Error(err))
		return nil, generation, false
	}
	return rows, generation, true
}

func parseGeneration(val interface{}) (uint64, error) {
	s, ok := val.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

func (c *redisLeaderboardCache) Set(ctx context.Context, generation uint64, rows []model.LeaderboardRow) {
	ttl := time.Duration(c.ttl.Load())
	if ttl <= 0 {
		return
	}
	val, _ := json.Marshal(rows)
	err := setIfGeneration.Run(ctx, c.Redis,
		[]string{leaderboardKey, leaderboardGenerationKey},
		strconv.FormatUint(generation, 10), string(val), ttl.Milliseconds(),
	).Err()
	if err != nil {
		logger.Log.Warn("Leaderboard cache write failed", zap.Error(err))
	}
}

func (c *redisLeaderboardCache) Invalidate(ctx context.Context) {
	_, err := c.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, leaderboardGenerationKey)
		pipe.Del(ctx, leaderboardKey)
		return nil
	})
	if err != nil {
		logger.Log.Warn("Leaderboard cache invalidation failed", zap.Error(err))
	}
}

func (c *redisLeaderboardCache) SetTTL(ttl time.Duration) {
	c.ttl.Store(int64(ttl))
}

type noopLeaderboardCache struct{}

func (noopLeaderboardCache) Get(context.Context) ([]model.LeaderboardRow, uint64, bool) {
	return nil, 0, false
}
func (noopLeaderboardCache) Set(context.Context, uint64, []model.LeaderboardRow) {}
func (noopLeaderboardCache) Invalidate(context.Context) {}
func (noopLeaderboardCache) SetTTL(time.Duration) {}
