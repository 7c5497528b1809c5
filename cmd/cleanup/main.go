// Command cleanup deletes artifacts and throttles that expired longer ago
// than the configured retention. Expiry is enforced at read time, so this
// only reclaims storage. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Usage:
//
//	cleanup [-config path]
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

	"github.com/heartmarshall/proximity-backend/internal/adapter/postgres"
	"github.com/heartmarshall/proximity-backend/internal/app"
	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config, overrides CONFIG_PATH")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath, true)
	} else {
		cfg, err = config.Load()
	}
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

	core := app.NewCore(logger, pool, nil, cfg, domain.SystemClock{})

	res, err := core.PruneExpired(ctx, cfg.Retention)
	if err != nil {
		logger.Error("prune failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int64("artifacts", res.Artifacts),
		slog.Int64("throttles", res.Throttles),
	)
}
