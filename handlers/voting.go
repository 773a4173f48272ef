// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// maxVoteBodyBytes bounds POST /api/vote bodies; larger ones are invalid choices
const maxVoteBodyBytes = 1 << 10

type VotingHandler struct {
	store   store.VoteStore
	metrics *metrics.Metrics
}

func NewVotingHandler(s store.VoteStore, m *metrics.Metrics) *VotingHandler {
	return &VotingHandler{store: s, metrics: m}
}

// Vote handles POST /api/vote
// A malformed or oversized body, a missing choice and an unknown choice all
// get the same 400.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxVoteBodyBytes)

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.reject(w)
		return
	}

	choice, err := models.ParseChoice(req.Choice)
	if err != nil {
		h.reject(w)
		return
	}

	tally, err := h.store.Increment(r.Context(), choice)
	if errors.Is(err, models.ErrInvalidChoice) {
		h.reject(w)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "choice", choice)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	h.metrics.VoteAccepted(choice)
	slog.Info("vote recorded", "choice", choice, "total", humanize.Comma(int64(tally.Total())))

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Success: true,
		Votes:   tally,
	})
}

func (h *VotingHandler) reject(w http.ResponseWriter) {
	h.metrics.VoteRejected()
	middleware.ErrorResponse(w, http.StatusBadRequest, models.InvalidChoiceMessage)
}
