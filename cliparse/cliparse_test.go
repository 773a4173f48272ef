// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "VOTE_STORE", "DATABASE_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("expected memory store, got %q", cfg.Store)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info log level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("VOTE_STORE", "sqlite")
	t.Setenv("DATABASE_URL", "file:votes.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Store != StoreSQLite {
		t.Errorf("expected sqlite store, got %q", cfg.Store)
	}
	if cfg.DatabaseURL != "file:votes.db" {
		t.Errorf("expected DATABASE_URL from env, got %q", cfg.DatabaseURL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug log level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("VOTE_STORE", "sqlite")

	cfg, err := ParseFlags([]string{"-p", "8081", "-s", "memory"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("CLI should override env: expected memory, got %q", cfg.Store)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"non-numeric PORT", map[string]string{"PORT": "http"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"negative port", nil, []string{"-p", "-1"}},
		{"unknown store", nil, []string{"-s", "redis"}},
		{"postgres without DSN", nil, []string{"-s", "postgres"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, nil},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_PostgresWithDSN(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-s", "postgres", "-d", "postgres://localhost/votes"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "postgres://localhost/votes" {
		t.Errorf("unexpected DatabaseURL %q", cfg.DatabaseURL)
	}
}
