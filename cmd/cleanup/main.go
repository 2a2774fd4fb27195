// Command cleanup removes journal entries older than the configured retention
// period, together with the burnout snapshots keyed to them. It is intended
// to be invoked by an external cron job, not as an in-process goroutine.
//
// Flags:
//
//	-dry-run  report how many entries would be deleted without deleting
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/foundermind/foundermind-backend/internal/adapter/postgres"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/journalentry"
	"github.com/foundermind/foundermind-backend/internal/app"
	"github.com/foundermind/foundermind-backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report what would be deleted without deleting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	entries := journalentry.New(pool)

	threshold := time.Now().UTC().AddDate(0, 0, -cfg.Retention.JournalDays)

	if *dryRun {
		count, err := entries.CountBefore(ctx, threshold)
		if err != nil {
			logger.Error("retention count failed",
				slog.String("error", err.Error()),
				slog.Time("threshold", threshold),
			)
			os.Exit(1)
		}
		logger.Info("retention dry run",
			slog.Int64("would_delete", count),
			slog.Time("threshold", threshold),
		)
		return
	}

	deleted, err := entries.DeleteBefore(ctx, threshold)
	if err != nil {
		logger.Error("retention delete failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("retention delete completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
