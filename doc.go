// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote server.

Quickly Vote is a single two-option poll, python versus javascript, with a
landing page and a small JSON API. Votes are counted in memory and start from
zero every time the process starts.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -p 9000 -log-level debug

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 8080), bound on all interfaces
  - VOTE_STORE (-s): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): DSN for the sqlite (default ":memory:") or postgres store
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

A .env file in the working directory is loaded first if present.

# Architecture

  - handlers: HTTP request handlers (vote, results, page, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, metrics, JSON helpers
  - models: Choice, Tally and request/response types
  - store: VoteStore with memory and SQL implementations
  - db: SQL driver selection and schema
  - metrics: Prometheus collectors
  - web: Embedded page assets
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
