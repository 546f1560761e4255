package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens (creating if absent) the tracker database at path and
// brings the schema up to date. A database that exists but cannot be read
// or migrated is an error; the caller treats that as fatal.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadActivityTypes(ctx context.Context) ([]ActivityType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM activity_types ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("load activity types: %w", err)
	}
	defer rows.Close()

	out := make([]ActivityType, 0)
	for rows.Next() {
		var item ActivityType
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("scan activity type: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ReplaceActivityTypes(ctx context.Context, in []ActivityType) error {
	return r.replaceAll(ctx, `DELETE FROM activity_types`, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO activity_types (id, name) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, item := range in {
			if _, err := stmt.ExecContext(ctx, item.ID, item.Name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) LoadCompletions(ctx context.Context) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT type_id, day FROM completions ORDER BY day, type_id`)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	defer rows.Close()

	out := make([]Completion, 0)
	for rows.Next() {
		var item Completion
		if err := rows.Scan(&item.TypeID, &item.Day); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ReplaceCompletions(ctx context.Context, in []Completion) error {
	return r.replaceAll(ctx, `DELETE FROM completions`, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO completions (type_id, day) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, item := range in {
			if _, err := stmt.ExecContext(ctx, item.TypeID, item.Day); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) replaceAll(ctx context.Context, clear string, insert func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clear); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear table: %w", err)
	}
	if err := insert(tx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert rows: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}
