package snapshot_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"mini_casino/internal/migrations"
	"mini_casino/internal/repository"
	"mini_casino/internal/repository/migrate"
)

const (
	table     = "snapshots"
	keyColumn = "snapshot_key"
	valColumn = "value"
	updatedAt = "updated_at"
)

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) the SQLite snapshot store at path
func OpenSQLite(path string, logger *zap.Logger) (repository.SnapshotRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	// a single connection keeps :memory: databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if err := migrate.Migrate(db, migrations.SQLite(), sq.Question, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}
	return newRepo(&sqliteStore{db: db}), nil
}

func (s *sqliteStore) get(ctx context.Context, key string) ([]byte, error) {
	query := sq.Select(valColumn).
		From(table).
		Where(sq.Eq{keyColumn: key}).
		PlaceholderFormat(sq.Question)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var raw string
	err = s.db.QueryRowContext(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(raw), nil
}

func (s *sqliteStore) put(ctx context.Context, key string, value []byte) error {
	query := sq.Insert(table).
		Columns(keyColumn, valColumn, updatedAt).
		Values(key, string(value), time.Now().UTC()).
		Suffix("ON CONFLICT(" + keyColumn + ") DO UPDATE SET " +
			valColumn + " = excluded." + valColumn + ", " +
			updatedAt + " = excluded." + updatedAt).
		PlaceholderFormat(sq.Question)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (s *sqliteStore) close() error {
	return s.db.Close()
}
