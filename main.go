package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/web"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var err error

	// Load .env if present; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	// signal.NotifyContext cancels ctx on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	voteStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("vote store setup failed", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Vote store ready", "store", cfg.Store)

	// Create router
	mux := router.NewRouter(voteStore, metrics.New(), web.Assets())

	// Create server, bound to all interfaces
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore builds the configured vote store and returns a func that releases it
func openStore(ctx context.Context, cfg cliparse.Config) (store.VoteStore, func() error, error) {
	if cfg.Store == cliparse.StoreMemory {
		return store.NewMemoryStore(), func() error { return nil }, nil
	}

	driver := db.DriverSQLite
	if cfg.Store == cliparse.StorePostgres {
		driver = db.DriverPostgres
	}

	conn, err := db.Open(ctx, driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	s, err := store.NewSQLStore(ctx, conn, driver)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return s, conn.Close, nil
}
