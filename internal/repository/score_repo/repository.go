package score_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mini_casino/internal/model"
	"mini_casino/internal/repository"
)

const (
	scoresTable  = "scores"
	colID        = "id"
	colPlayerID  = "player_id"
	colGameType  = "game_type"
	colScore     = "score"
	colCreatedAt = "created_at"

	playersTable  = "players"
	colTotalScore = "total_score"
	colBestScore  = "best_score"
	colWorstScore = "worst_score"
	colGames      = "games"
	colFirstPlay  = "first_play"
	colLastPlay   = "last_play"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewScoreRepository(dbc *pgxpool.Pool) repository.ScoreRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn returns the transaction started by the tx manager, or the pool outside of one
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateScore inserts a score row and returns it with its id and timestamp
func (r *repo) CreateScore(ctx context.Context, entry model.ScoreEntry) (model.ScoreEntry, error) {
	query := psql.Insert(scoresTable).
		Columns(colPlayerID, colGameType, colScore).
		Values(entry.PlayerID, string(entry.GameType), entry.Score).
		Suffix("RETURNING " + colID + ", " + colCreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.ScoreEntry{}, err
	}

	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		return model.ScoreEntry{}, fmt.Errorf("insert score: %w", err)
	}
	return entry, nil
}

// UpsertPlayer folds one score into the player's aggregate row
func (r *repo) UpsertPlayer(ctx context.Context, entry model.ScoreEntry) error {
	query := psql.Insert(playersTable).
		Columns(colPlayerID, colTotalScore, colBestScore, colWorstScore, colGames, colFirstPlay, colLastPlay).
		Values(entry.PlayerID, entry.Score, entry.Score, entry.Score, 1, entry.Timestamp, entry.Timestamp).
		Suffix("ON CONFLICT (" + colPlayerID + ") DO UPDATE SET " +
			colTotalScore + " = players.total_score + excluded.total_score, " +
			colBestScore + " = GREATEST(players.best_score, excluded.best_score), " +
			colWorstScore + " = LEAST(players.worst_score, excluded.worst_score), " +
			colGames + " = players.games + 1, " +
			colLastPlay + " = GREATEST(players.last_play, excluded.last_play)")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

// CountPlayerGames returns 0 for an unknown player
func (r *repo) CountPlayerGames(ctx context.Context, playerID string) (int, error) {
	query := psql.Select(colGames).
		From(playersTable).
		Where(sq.Eq{colPlayerID: playerID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var games int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&games)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return games, nil
}

func (r *repo) Scores(ctx context.Context, playerID string, limit int) ([]model.ScoreEntry, error) {
	return r.scores(ctx, playerID, limit, "DESC")
}

func (r *repo) scores(ctx context.Context, playerID string, limit int, order string) ([]model.ScoreEntry, error) {
	query := psql.Select(colID, colPlayerID, colGameType, colScore, colCreatedAt).
		From(scoresTable).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colCreatedAt+" "+order, colID+" "+order).
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ScoreEntry, 0, limit)
	for rows.Next() {
		var (
			e        model.ScoreEntry
			gameType string
		)
		if err := rows.Scan(&e.ID, &e.PlayerID, &gameType, &e.Score, &e.Timestamp); err != nil {
			return nil, err
		}
		e.GameType = model.GameType(gameType)
		out = append(out, e)
	}
	return out, rows.Err()
}

// PlayerStats returns model.ErrPlayerNotFound when the player has no score
func (r *repo) PlayerStats(ctx context.Context, playerID string) (*model.PlayerStats, error) {
	query := psql.Select(colGames, colTotalScore, colBestScore, colWorstScore).
		From(playersTable).
		Where(sq.Eq{colPlayerID: playerID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	stats := model.PlayerStats{PlayerID: playerID}
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&stats.TotalGames, &stats.TotalScore, &stats.BestScore, &stats.WorstScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	first, err := r.scores(ctx, playerID, 1, "ASC")
	if err != nil {
		return nil, err
	}
	last, err := r.scores(ctx, playerID, 1, "DESC")
	if err != nil {
		return nil, err
	}
	if len(first) == 0 || len(last) == 0 {
		return nil, model.ErrPlayerNotFound
	}
	stats.FirstGame = first[0]
	stats.LastGame = last[0]

	return &stats, nil
}

func (r *repo) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	query := psql.Select(colPlayerID, colTotalScore, colBestScore, colGames, colLastPlay).
		From(playersTable).
		OrderBy(colTotalScore+" DESC", colPlayerID).
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.TotalScore, &e.BestScore, &e.GamesPlayed, &e.LastPlay); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *repo) Players(ctx context.Context) ([]string, error) {
	query := psql.Select(colPlayerID).
		From(playersTable).
		OrderBy(colPlayerID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		players = append(players, id)
	}
	return players, rows.Err()
}

func (r *repo) Totals(ctx context.Context) (int, int, error) {
	query := psql.Select("COUNT(*)", "COALESCE(SUM("+colGames+"), 0)").
		From(playersTable)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, 0, err
	}

	var players, games int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&players, &games)
	if err != nil {
		return 0, 0, err
	}
	return players, games, nil
}
