// Package migrate applies versioned SQL files to a database/sql handle.
package migrate

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

const versionTable = "schema_version"

// Migrate runs every NNN_name.sql file of migrationsFS newer than the recorded
// schema version, each one in its own transaction.
func Migrate(db *sql.DB, migrationsFS fs.FS, placeholder sq.PlaceholderFormat, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + versionTable + ` (version INTEGER PRIMARY KEY)`)
	if err != nil {
		return err
	}

	var current int
	err = sq.Select("COALESCE(MAX(version), 0)").
		From(versionTable).
		PlaceholderFormat(placeholder).
		RunWith(db).
		QueryRow().
		Scan(&current)
	if err != nil {
		return err
	}

	entries, err := fs.Glob(migrationsFS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, name := range entries {
		version, err := ParseMigrationVersion(name)
		if err != nil {
			logger.Warn("skipping invalid migration file", zap.String("file", name), zap.Error(err))
			continue
		}
		if version <= current {
			continue
		}

		sqlBytes, err := fs.ReadFile(migrationsFS, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx for migration %d: %w", version, err)
		}

		logger.Info("migrating schema", zap.Int("version", version))
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", version, err)
		}

		_, err = sq.Insert(versionTable).
			Columns("version").
			Values(version).
			PlaceholderFormat(placeholder).
			RunWith(tx).
			Exec()
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", version, err)
		}
	}

	return nil
}

func ParseMigrationVersion(filename string) (int, error) {
	base := filename
	if idx := strings.LastIndex(filename, "/"); idx >= 0 {
		base = filename[idx+1:]
	}

	if !strings.HasSuffix(base, ".sql") {
		return 0, fmt.Errorf("migration %q: invalid extension", base)
	}

	name := strings.TrimSuffix(base, ".sql")
	prefix, _, _ := strings.Cut(name, "_")
	if prefix == "" {
		return 0, fmt.Errorf("migration %q: missing version prefix", base)
	}

	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, fmt.Errorf("migration %q: invalid version number", base)
	}

	return version, nil
}
