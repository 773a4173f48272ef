// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
)

// SQLStore keeps the tally in a vote_tally table, one row per choice
type SQLStore struct {
	db     *sql.DB
	driver string
}

// NewSQLStore creates the schema and resets every count to zero, so the
// tally starts empty on each process start like MemoryStore.
func NewSQLStore(ctx context.Context, conn *sql.DB, driver string) (*SQLStore, error) {
	if err := db.CreateSchema(ctx, conn); err != nil {
		return nil, err
	}

	s := &SQLStore{db: conn, driver: driver}
	if err := s.reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vote_tally`); err != nil {
		return fmt.Errorf("failed to clear tally: %w", err)
	}

	insert := db.Rebind(s.driver, `INSERT INTO vote_tally (choice, count) VALUES (?, 0)`)
	for _, c := range models.Choices() {
		if _, err := tx.ExecContext(ctx, insert, c.String()); err != nil {
			return fmt.Errorf("failed to seed %s: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

func (s *SQLStore) Increment(ctx context.Context, c models.Choice) (models.Tally, error) {
	if !c.Valid() {
		return models.Tally{}, models.ErrInvalidChoice
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Tally{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// A single UPDATE is atomic, so concurrent votes never overwrite each other
	res, err := tx.ExecContext(ctx,
		db.Rebind(s.driver, `UPDATE vote_tally SET count = count + 1 WHERE choice = ?`),
		c.String(),
	)
	if err != nil {
		return models.Tally{}, fmt.Errorf("failed to increment %s: %w", c, err)
	}
	if n, err := res.RowsAffected(); err == nil && n != 1 {
		return models.Tally{}, fmt.Errorf("tally row for %s missing", c)
	}

	tally, err := readTally(ctx, tx)
	if err != nil {
		return models.Tally{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Tally{}, fmt.Errorf("failed to commit vote: %w", err)
	}
	return tally, nil
}

func (s *SQLStore) Snapshot(ctx context.Context) (models.Tally, error) {
	return readTally(ctx, s.db)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func readTally(ctx context.Context, q querier) (models.Tally, error) {
	var tally models.Tally

	rows, err := q.QueryContext(ctx, `SELECT choice, count FROM vote_tally`)
	if err != nil {
		return tally, fmt.Errorf("failed to query tally: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return tally, fmt.Errorf("failed to scan tally row: %w", err)
		}
		c, err := models.ParseChoice(name)
		if err != nil {
			// Rows for unknown choices are not part of the tally
			continue
		}
		tally[c] = count
	}
	if err := rows.Err(); err != nil {
		return tally, fmt.Errorf("failed to read tally: %w", err)
	}

	return tally, nil
}
