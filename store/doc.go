// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the vote tally.

Handlers never touch counts directly; they go through VoteStore:

	tally, err := s.Increment(ctx, models.Python)
	tally, err := s.Snapshot(ctx)

# Implementations

  - MemoryStore: mutex-protected array in process memory (default)
  - SQLStore: one row per choice in vote_tally (sqlite or postgres)

Both make Increment atomic with respect to concurrent callers and both start
from zero: NewSQLStore resets the table when it opens.
*/
package store
