// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type ResultsHandler struct {
	store store.VoteStore
}

func NewResultsHandler(s store.VoteStore) *ResultsHandler {
	return &ResultsHandler{store: s}
}

// GetResults handles GET /api/results
// Returns counts, their total, and each choice's rounded share
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	tally, err := h.store.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to load tally", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Votes:       tally,
		Total:       tally.Total(),
		Percentages: tally.Percentages(),
	})
}
