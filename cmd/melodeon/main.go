package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ksarabia/melodeon/internal/audio"
	"github.com/ksarabia/melodeon/internal/config"
	"github.com/ksarabia/melodeon/internal/playlist"
	"github.com/ksarabia/melodeon/internal/ui"
	"github.com/ksarabia/melodeon/pkg/notify"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for MELODEON_CONFIG and friends
	_ = godotenv.Load()

	cfg, err := config.LoadOrCreate(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// The terminal is owned by the UI, so logs go to a file.
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "melodeon.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	playlistDir := filepath.Join(cfg.DataDir, "playlists")
	playlists := playlist.NewManager()
	if err := playlists.LoadDir(playlistDir); err != nil {
		slog.Warn("load playlists", "error", err)
	}

	// Persist playlists on exit
	defer func() {
		if err := playlists.SaveAll(playlistDir); err != nil {
			slog.Error("save playlists", "error", err)
		}
	}()

	mgr := audio.NewManager()
	defer mgr.Stop()

	feed := notify.NewFeed(32)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ui.Run(ctx, cfg, mgr, playlists, feed); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
