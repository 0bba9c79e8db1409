package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/diskusiapp/diskusi/model"
	"github.com/go-redis/redis/v8"
)

// RedisClient wraps the hot read-view caches (top trending topics and the
// points leaderboard). Both views are recomputed by the database on miss, so
// every method here is best-effort: callers treat any error as a miss.
type RedisClient struct {
	inner *redis.Client
}

const (
	topTopicsKeyPrefix   = "trending_top:"
	leaderboardKeyPrefix = "leaderboard:"

	// Aggregates go stale until the next explicit refresh anyway, a short TTL
	// just bounds how stale the cached copy can get after an invalidation miss.
	ViewCacheTTL = time.Minute
)

func GetRedisClient() *RedisClient {
	return &RedisClient{
		inner: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
			Password: os.Getenv("REDIS_PASSWD"),
			DB:       0, // use default DB
		})}
}

func topTopicsKey(limit int) string {
	return fmt.Sprintf("%s%d", topTopicsKeyPrefix, limit)
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, limit)
}

func (r *RedisClient) GetTopTopics(ctx context.Context, limit int) ([]model.TrendingTopicStat, error) {
	raw, err := r.inner.Get(ctx, topTopicsKey(limit)).Result()
	if err != nil {
		return nil, err
	}
	var stats []model.TrendingTopicStat
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *RedisClient) SetTopTopics(ctx context.Context, limit int, stats []model.TrendingTopicStat) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.inner.Set(ctx, topTopicsKey(limit), raw, ViewCacheTTL).Err()
}

// InvalidateTopTopics drops every cached top view, called after a rate or a
// generation run changed the underlying aggregates.
func (r *RedisClient) InvalidateTopTopics(ctx context.Context) error {
	keys, err := r.inner.Keys(ctx, topTopicsKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.inner.Del(ctx, keys...).Err()
}

func (r *RedisClient) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	raw, err := r.inner.Get(ctx, leaderboardKey(limit)).Result()
	if err != nil {
		return nil, err
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *RedisClient) SetLeaderboard(ctx context.Context, limit int, entries []model.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.inner.Set(ctx, leaderboardKey(limit), raw, ViewCacheTTL).Err()
}
