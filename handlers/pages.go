// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/web"
)

type PageHandler struct {
	assets fs.FS
	static http.Handler
}

// NewPageHandler serves the poll UI from assets, which must contain index.html
func NewPageHandler(assets fs.FS) *PageHandler {
	return &PageHandler{
		assets: assets,
		static: http.StripPrefix("/static/", http.FileServerFS(assets)),
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(h.assets, web.IndexFile)
	if err != nil {
		slog.Error("failed to read landing page", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Page unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// Static handles GET /static/{file} for the page's script and stylesheet
func (h *PageHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}
