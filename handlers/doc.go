// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the poll.

# Handler Types

  - VotingHandler: casts votes (POST /api/vote)
  - ResultsHandler: reports counts and percentages (GET /api/results)
  - PageHandler: serves the poll page and its assets (GET /, GET /static/)
  - Health: liveness probe (GET /api/health)

Vote and results handlers share one store.VoteStore, injected through their
constructors:

	votingHandler := handlers.NewVotingHandler(voteStore, m)
	resultsHandler := handlers.NewResultsHandler(voteStore)

# Voting

The request body is {"choice": "python"} or {"choice": "javascript"}.
Anything else, including malformed JSON or a missing field, is answered with

	400 {"success": false, "error": "Invalid choice"}

and leaves the tally untouched. On success the response carries the counts
after the increment:

	200 {"success": true, "votes": {"python": 1, "javascript": 0}}

# Results

	200 {"votes": {...}, "total": 4, "percentages": {"python": 75, "javascript": 25}}

Percentages are rounded to one decimal place and are all 0 before the first
vote.
*/
package handlers
