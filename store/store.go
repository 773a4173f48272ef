// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/quickly-vote/models"
)

// VoteStore owns the vote tally. All reads and writes go through it.
type VoteStore interface {
	// Increment adds one vote for c and returns the counts after the
	// increment. Invalid choices fail with models.ErrInvalidChoice and
	// leave the tally unchanged.
	Increment(ctx context.Context, c models.Choice) (models.Tally, error)

	// Snapshot returns a copy of the current counts
	Snapshot(ctx context.Context) (models.Tally, error)
}
