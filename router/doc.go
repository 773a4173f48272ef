// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the poll.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(voteStore, metrics.New(), web.Assets())

# Endpoints

Page:

	GET /               - Poll page (exact match)
	GET /static/{file}  - Page script and stylesheet

API:

	POST /api/vote      - Cast a vote
	GET  /api/results   - Counts, total and percentages
	GET  /api/health    - Liveness probe

Operations:

	GET /metrics        - Prometheus metrics

Unknown paths get 404 and known paths with the wrong method get 405, both
from ServeMux itself. Every route except /metrics is wrapped with request
logging and latency metrics.
*/
package router
