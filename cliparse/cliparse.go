package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Vote store backends
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

const DefaultPort = 8080

type Config struct {
	Port        int
	Store       string
	DatabaseURL string
	LogLevel    slog.Level
}

// ParseFlags reads flags, falls back to environment variables, and validates the result
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Store, "s", "", "Vote store (memory, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite or postgres stores")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.Store == "" {
		cfg.Store = os.Getenv("VOTE_STORE")
		if cfg.Store == "" {
			cfg.Store = StoreMemory
		}
	}
	switch cfg.Store {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return Config{}, fmt.Errorf("unknown vote store %q", cfg.Store)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.Store == StorePostgres && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for postgres store (use -d or DATABASE_URL env)")
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level: %w", err)
		}
	}

	return cfg, nil
}
