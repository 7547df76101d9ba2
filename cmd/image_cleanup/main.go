package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"boolbnb/internal/config"
	"boolbnb/internal/database"
	"boolbnb/internal/domain/image"
	"boolbnb/internal/logging"
	"boolbnb/internal/storage"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report orphaned files without deleting them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel)

	if cfg.StorageDriver != config.StorageLocal {
		log.Error("image cleanup only supports the local storage driver", slog.String("driver", cfg.StorageDriver))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, database.Options{Logger: log})
	if err != nil {
		log.Error("connect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Error("open upload dir", slog.String("error", err.Error()))
		os.Exit(1)
	}
	stored, err := store.List()
	if err != nil {
		log.Error("list upload dir", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := image.RemoveOrphans(ctx, image.NewRepository(db), store, stored, *dryRun)
	if err != nil {
		log.Error("image cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("image cleanup completed",
		slog.Int("scanned", res.Scanned),
		slog.Int("removed", len(res.Removed)),
		slog.Bool("dry_run", *dryRun),
	)
}
