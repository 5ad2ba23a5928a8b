// Package store persists form instance values in sqlite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/iw2rmb/codefield/form"
)

// Store reads and writes instance values.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open migrates and opens the database at path, creating its directory.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := Migrate(path); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return &Store{db: db, now: now}, nil
}

func now() time.Time { return time.Now().UTC().Truncate(time.Second) }

func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

// Values returns the stored values of instance id. An unknown id yields an
// empty map.
func (s *Store) Values(ctx context.Context, id uuid.UUID) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value FROM instance_values WHERE instance_id = ? ORDER BY name`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, rows.Err()
}

// Load builds an instance with id from the stored values. Defaults fill
// names that were never stored.
func (s *Store) Load(ctx context.Context, id uuid.UUID, defaults map[string]string) (*form.Instance, error) {
	stored, err := s.Values(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load instance %s: %w", id, err)
	}
	values := make(map[string]string, len(defaults)+len(stored))
	for k, v := range defaults {
		values[k] = v
	}
	for k, v := range stored {
		values[k] = v
	}
	return form.NewInstanceWithID(id, values), nil
}

// Latest returns the most recently written instance id.
func (s *Store) Latest(ctx context.Context) (uuid.UUID, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM instances ORDER BY updated_at DESC, created_at DESC LIMIT 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("instance id %q: %w", raw, err)
	}
	return id, true, nil
}

// SaveValue upserts one value of instance id.
func (s *Store) SaveValue(ctx context.Context, id uuid.UUID, name, value string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.upsert(ctx, tx, id, name, value)
	})
}

// Save writes every value of inst.
func (s *Store) Save(ctx context.Context, inst *form.Instance) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for name, value := range inst.Values() {
			if err := s.upsert(ctx, tx, inst.ID(), name, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Attach saves every change of inst as it happens. Failures go to onErr,
// which may be nil.
func (s *Store) Attach(ctx context.Context, inst *form.Instance, onErr func(error)) {
	inst.Observe(func(ch form.ValueChange) {
		if err := s.SaveValue(ctx, inst.ID(), ch.Name, ch.New); err != nil && onErr != nil {
			onErr(fmt.Errorf("save %s: %w", ch.Name, err))
		}
	})
}

// Delete removes instance id and its values.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM instances WHERE id = ?`, id.String())
	return err
}

func (s *Store) upsert(ctx context.Context, tx *sql.Tx, id uuid.UUID, name, value string) error {
	ts := s.now()
	if _, err := tx.ExecContext(ctx, `
	INSERT INTO instances(id, created_at, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET updated_at=excluded.updated_at;
	`, id.String(), ts, ts); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `
	INSERT INTO instance_values(instance_id, name, value, updated_at) VALUES (?, ?, ?, ?)
	ON CONFLICT(instance_id, name) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, id.String(), name, value, ts)
	return err
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
