// Package localstore persists small client-side values such as the session
// token between runs.
package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/s21platform/moviemagic/internal/config"
)

const tableName = "local_storage"

const schema = `CREATE TABLE IF NOT EXISTS local_storage (
	storage_key TEXT PRIMARY KEY,
	value       TEXT NOT NULL,
	updated_at  TIMESTAMP NOT NULL
)`

type Repository struct {
	connection  *sqlx.DB
	placeholder sq.PlaceholderFormat
}

func New(cfg *config.Config) *Repository {
	repo, err := Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		log.Fatal("error connect: ", err)
	}
	return repo
}

func Open(driver, dsn string) (*Repository, error) {
	conn, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &Repository{
		connection:  conn,
		placeholder: placeholder,
	}, nil
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Get returns the stored value and whether the key exists.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sq.Select("value").
		From(tableName).
		Where(sq.Eq{"storage_key": key}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var value string
	err = r.connection.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return value, true, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert(tableName).
		Columns("storage_key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.connection.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func (r *Repository) Remove(ctx context.Context, key string) error {
	query, args, err := sq.Delete(tableName).
		Where(sq.Eq{"storage_key": key}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.connection.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	return nil
}
