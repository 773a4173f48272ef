package models

import (
	"encoding/json"
	"fmt"
)

// Health status reported by GET /api/health
const StatusHealthy = "healthy"

// Request types

// VoteRequest is the body of POST /api/vote
type VoteRequest struct {
	Choice string `json:"choice"`
}

// UnmarshalJSON requires an exact, lowercase "choice" key holding a string.
// encoding/json alone would also accept "Choice" or "CHOICE".
func (v *VoteRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	raw, ok := fields["choice"]
	if !ok {
		return fmt.Errorf("%w: choice field missing", ErrInvalidChoice)
	}

	var choice string
	if err := json.Unmarshal(raw, &choice); err != nil {
		return fmt.Errorf("%w: choice must be a string", ErrInvalidChoice)
	}

	v.Choice = choice
	return nil
}

// Response types

type VoteResponse struct {
	Success bool  `json:"success"`
	Votes   Tally `json:"votes"`
}

type ResultsResponse struct {
	Votes       Tally       `json:"votes"`
	Total       int         `json:"total"`
	Percentages Percentages `json:"percentages"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
