// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"io/fs"
	"net/http"

	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/store"
)

func NewRouter(voteStore store.VoteStore, m *metrics.Metrics, assets fs.FS) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(voteStore, m)
	resultsHandler := handlers.NewResultsHandler(voteStore)
	pageHandler := handlers.NewPageHandler(assets)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, pattern, h)))
	}

	// Poll page
	handle("GET /{$}", pageHandler.Index)
	handle("GET /static/", pageHandler.Static)

	// Voting API
	handle("POST /api/vote", votingHandler.Vote)
	handle("GET /api/results", resultsHandler.GetResults)

	// Health check
	handle("GET /api/health", handlers.Health)

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", m.Handler())

	return mux
}
