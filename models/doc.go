// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the poll's domain types and the API's request and
response bodies.

# Choices

The poll has a closed set of options, modelled as an enumerated type:

	models.Python     // "python"
	models.JavaScript // "javascript"

ParseChoice is the only way a wire string becomes a Choice. Anything else,
including the empty string, yields ErrInvalidChoice:

	c, err := models.ParseChoice(req.Choice)
	if errors.Is(err, models.ErrInvalidChoice) { ... }

# Tally

Tally is a fixed-size array of counts indexed by Choice, so the key set can
never grow or shrink. It derives the total and the rounded percentages:

	t.Total()        // sum of counts
	t.Percentages()  // count/total*100, one decimal, 0 when total is 0

Both Tally and Percentages encode as JSON objects keyed by choice name:

	{"python":3,"javascript":1}

# Request and Response Types

  - VoteRequest: choice
  - VoteResponse: success, votes
  - ResultsResponse: votes, total, percentages
  - HealthResponse: status
  - ErrorResponse: success, error
*/
package models
