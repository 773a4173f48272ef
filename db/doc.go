// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections for the optional SQL vote store and creates
its schema.

# Drivers

Two drivers are registered:

  - sqlite (modernc.org/sqlite, pure Go). The DSN defaults to ":memory:".
  - postgres (github.com/lib/pq). A DSN is required.

	conn, err := db.Open(ctx, db.DriverSQLite, "")

# Schema Creation

CreateSchema creates the single vote_tally table:

	vote_tally(choice TEXT PRIMARY KEY, count BIGINT NOT NULL CHECK (count >= 0))

Safe to call multiple times - uses IF NOT EXISTS.

# Placeholders

Queries are written with ? placeholders and passed through Rebind, which
converts them to $1, $2, ... for postgres.
*/
package db
