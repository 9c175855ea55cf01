package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"casedesk/internal/cases/fixtures"
	"casedesk/internal/cases/handler"
	"casedesk/internal/cases/service"
	"casedesk/internal/platform/config"
	"casedesk/internal/platform/httpserver"
	"casedesk/internal/platform/logger"
	"casedesk/internal/platform/metrics"
	"casedesk/internal/platform/postgres"
	"casedesk/internal/platform/redis"
	httptransport "casedesk/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "casedesk: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Format, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}

	deps := httptransport.Deps{
		Metrics:  metrics.New(),
		Logger:   log,
		Location: cfg.Location(),
	}
	if redisClient != nil {
		defer redisClient.Close()
		deps.Redis = redisClient
	}

	pgClient, err := postgres.New(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	if pgClient != nil {
		defer pgClient.Close()
		deps.Postgres = pgClient
	}

	store, err := fixtures.Load(ctx, fixtureSource(cfg, redisClient, pgClient))
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}
	log.Info("fixtures loaded",
		"source", store.Source(),
		"cases", store.Len(),
		"details", store.DetailCount(),
	)
	deps.Metrics.SetFixtureRecords(store.Len(), store.DetailCount())
	deps.Fixtures = store

	delays := cfg.EffectiveDelays()
	if !cfg.SimulatedLatency {
		log.Info("simulated latency disabled")
	}
	deps.Cases = handler.New(service.New(store, log), log, delays)

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(deps))
	return httpserver.Run(ctx, srv, cfg.ShutdownTimeout, log)
}

// fixtureSource picks Redis when configured, then Postgres, then a fixture
// directory, then the embedded data.
func fixtureSource(cfg config.Server, rc *redis.Client, pg *postgres.Client) fixtures.Source {
	switch {
	case rc != nil:
		return fixtures.RedisSource{Client: rc.Client, Prefix: cfg.Redis.Prefix}
	case pg != nil:
		return fixtures.PostgresSource{DB: pg.DB, Table: cfg.Postgres.Table}
	case cfg.FixturesDir != "":
		return fixtures.DirSource{Dir: cfg.FixturesDir}
	default:
		return fixtures.EmbeddedSource{}
	}
}
