// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - Store: Vote store backend, one of memory, sqlite, postgres (default: memory)
  - DatabaseURL: DSN for the sqlite or postgres store
  - LogLevel: slog level (default: info)

# CLI Flags

	-p          Server port
	-s          Vote store
	-d          Database URL
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	VOTE_STORE   → -s
	DATABASE_URL → -d
	LOG_LEVEL    → -log-level

CLI flags take precedence over environment variables. main loads a .env
file into the environment before calling ParseFlags, so real environment
variables win over .env entries.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is outside 1-65535
  - the store is not memory, sqlite or postgres
  - the postgres store has no DATABASE_URL
  - the log level is not recognized by slog
*/
package cliparse
