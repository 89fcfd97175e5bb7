package leaderboard_cache_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"mini_casino/internal/model"
	"mini_casino/internal/repository"
)

const leaderboardKey = "leaderboard:top"

type repo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLeaderboardCacheRepository(rdb *redis.Client, ttl time.Duration) repository.LeaderboardCacheRepository {
	return &repo{rdb: rdb, ttl: ttl}
}

func (r *repo) Get(ctx context.Context) ([]model.LeaderboardEntry, bool, error) {
	raw, err := r.rdb.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("decode cached leaderboard: %w", err)
	}
	return entries, true, nil
}

func (r *repo) Set(ctx context.Context, entries []model.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, leaderboardKey, raw, r.ttl).Err()
}

func (r *repo) Invalidate(ctx context.Context) error {
	return r.rdb.Del(ctx, leaderboardKey).Err()
}

type noopRepo struct{}

// NewNoopLeaderboardCache is used when no Redis is configured; every read misses
func NewNoopLeaderboardCache() repository.LeaderboardCacheRepository {
	return noopRepo{}
}

func (noopRepo) Get(context.Context) ([]model.LeaderboardEntry, bool, error) {
	return nil, false, nil
}

func (noopRepo) Set(context.Context, []model.LeaderboardEntry) error {
	return nil
}

func (noopRepo) Invalidate(context.Context) error {
	return nil
}
