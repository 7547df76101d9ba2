package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"boolbnb/internal/config"
	"boolbnb/internal/database"
	"boolbnb/internal/logging"
	"boolbnb/internal/seed"
)

func main() {
	properties := flag.Int("properties", 30, "number of listings to create")
	users := flag.Int("users", 10, "number of users to create")
	maxReviews := flag.Int("max-reviews", 5, "upper bound of reviews per listing")
	seedValue := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	reset := flag.Bool("reset", false, "delete existing listings, reviews, likes and users first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, database.Options{Logger: log})
	if err != nil {
		log.Error("connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		log.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := seed.Run(context.Background(), db, seed.Options{
		Properties: *properties,
		Users:      *users,
		MaxReviews: *maxReviews,
		Seed:       *seedValue,
		Reset:      *reset,
	})
	if err != nil {
		log.Error("seed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("seeded",
		slog.Int("types", res.Types),
		slog.Int("properties", res.Properties),
		slog.Int("reviews", res.Reviews),
		slog.Int("likes", res.Likes),
		slog.Int("users", res.Users),
	)
}
