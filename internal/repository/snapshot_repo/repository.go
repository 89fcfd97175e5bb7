// Package snapshot_repo stores player snapshots as JSON values in a local
// key-value store, backed by SQLite or bbolt.
package snapshot_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"mini_casino/internal/model"
	"mini_casino/internal/repository"
)

const lastPlayerKey = "playerId"

// Key is the storage key of a player's snapshot for one game
func Key(gameType model.GameType, playerID string) string {
	switch gameType {
	case model.GamePlinko:
		return "plinko_data_" + playerID
	default:
		return "game_data_" + playerID
	}
}

// kv is the raw byte store both drivers implement. get returns nil, nil on a missing key.
type kv interface {
	get(ctx context.Context, key string) ([]byte, error)
	put(ctx context.Context, key string, value []byte) error
	close() error
}

type repo struct {
	store kv
}

func newRepo(store kv) repository.SnapshotRepository {
	return &repo{store: store}
}

func (r *repo) Snapshot(ctx context.Context, gameType model.GameType, playerID string) (model.Snapshot, bool, error) {
	raw, err := r.store.get(ctx, Key(gameType, playerID))
	if err != nil {
		return model.Snapshot{}, false, err
	}
	if raw == nil {
		return model.Snapshot{}, false, nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("decode snapshot %s: %w", Key(gameType, playerID), err)
	}
	return snap, true, nil
}

func (r *repo) SaveSnapshot(ctx context.Context, gameType model.GameType, playerID string, snap model.Snapshot) error {
	if snap.GameStack == nil {
		snap.GameStack = []model.RoundResult{}
	}
	if snap.VictoryList == nil {
		snap.VictoryList = []model.VictoryRecord{}
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return r.store.put(ctx, Key(gameType, playerID), raw)
}

func (r *repo) LastPlayerID(ctx context.Context) (string, bool, error) {
	raw, err := r.store.get(ctx, lastPlayerKey)
	if err != nil {
		return "", false, err
	}
	if raw == nil {
		return "", false, nil
	}
	return string(raw), true, nil
}

func (r *repo) SaveLastPlayerID(ctx context.Context, playerID string) error {
	return r.store.put(ctx, lastPlayerKey, []byte(playerID))
}

func (r *repo) Close() error {
	return r.store.close()
}
