// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
)

// SetupTestDB opens a private in-memory SQLite database with the schema in place.
// It is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, db.DefaultSQLiteDSN)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// ErrStoreDown is returned by FailingStore
var ErrStoreDown = errors.New("store unavailable")

// FailingStore is a vote store whose every operation fails with ErrStoreDown
type FailingStore struct{}

func (FailingStore) Increment(context.Context, models.Choice) (models.Tally, error) {
	return models.Tally{}, ErrStoreDown
}

func (FailingStore) Snapshot(context.Context) (models.Tally, error) {
	return models.Tally{}, ErrStoreDown
}

// MakeRequest creates an HTTP test request.
// A string body is sent verbatim; anything else is JSON-encoded.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		jsonBody, _ := json.Marshal(b)
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertBody compares the response body, minus the encoder's trailing newline
func AssertBody(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if got := strings.TrimSpace(w.Body.String()); got != expected {
		t.Errorf("Expected body %s, got %s", expected, got)
	}
}
