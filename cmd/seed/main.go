// Command seed loads teams, rosters, tournaments and match results into the
// database from a JSON fixture (local file or r2://bucket/key).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dosada05/tournament-results/config"
	"github.com/Dosada05/tournament-results/db"
	"github.com/Dosada05/tournament-results/fixtures"
	"github.com/Dosada05/tournament-results/repositories"
	"github.com/Dosada05/tournament-results/services"
	"github.com/Dosada05/tournament-results/storage"
)

func main() {
	fixturePath := flag.String("fixture", "", "fixture path or r2://bucket/key (default: built-in 2024 season)")
	reset := flag.Bool("reset", false, "delete the fixture's teams and tournaments before loading")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *fixturePath, *reset); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, fixturePath string, reset bool) error {
	fixture, err := loadFixture(ctx, cfg, fixturePath)
	if err != nil {
		return err
	}

	dbConn, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn); err != nil {
		return err
	}

	seedService := services.NewSeedService(
		dbConn,
		repositories.NewPostgresTeamRepository(dbConn),
		repositories.NewPostgresPlayerRepository(dbConn),
		repositories.NewPostgresTournamentRepository(dbConn),
		repositories.NewPostgresMatchRepository(dbConn),
		logger,
	)

	report, err := seedService.Seed(ctx, fixture, services.SeedOptions{Reset: reset})
	if err != nil {
		return err
	}

	logger.Info("seed completed",
		slog.Int("teams_created", report.TeamsCreated),
		slog.Int("players_created", report.PlayersCreated),
		slog.Int("tournaments_created", report.TournamentsCreated),
		slog.Int("matches_created", report.MatchesCreated),
		slog.Int("teams_deleted", report.TeamsDeleted),
		slog.Int("tournaments_deleted", report.TournamentsDeleted),
	)
	return nil
}

func loadFixture(ctx context.Context, cfg *config.Config, path string) (*fixtures.Fixture, error) {
	if path == "" {
		return fixtures.Default()
	}

	loc, err := storage.ParseLocation(path, cfg.R2.BucketName)
	if err != nil {
		return nil, err
	}

	var objects storage.ObjectReader
	if loc.Remote() && cfg.R2.Enabled() {
		objects, err = storage.NewCloudflareR2Reader(ctx, storage.CloudflareR2Config{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
	}

	rc, err := storage.Open(ctx, loc, objects)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	f, err := fixtures.Parse(io.LimitReader(rc, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", loc, err)
	}
	return f, nil
}
