package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/proximity-backend/internal/adapter/cache"
	"github.com/heartmarshall/proximity-backend/internal/adapter/postgres"
	"github.com/heartmarshall/proximity-backend/internal/adapter/provider/ipgeo"
	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
	"github.com/heartmarshall/proximity-backend/internal/transport/rest"
)

const dbStatsInterval = 15 * time.Second

// App owns the process resources: the database pool, the optional Redis
// client, the Core built on them and the ops HTTP server.
type App struct {
	Core *Core

	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	redis  *redis.Client
	server *http.Server
}

// New connects to PostgreSQL and, when configured, Redis, then wires the
// Core and the ops server. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	a := &App{cfg: cfg, log: log, pool: pool}

	store, err := a.cacheStore(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	var locator IPLocator
	if cfg.IPGeo.Enabled() {
		locator = ipgeo.NewProvider(cfg.IPGeo, store, log)
	}

	a.Core = NewCore(log, pool, locator, cfg, domain.SystemClock{})

	components := map[string]rest.Pinger{"database": pool}
	if a.redis != nil {
		rdb := a.redis
		components["redis"] = rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	health := rest.NewHealthHandler(BuildVersion(), components)

	a.server = &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewOpsRouter(health, cfg.Metrics.Enabled(), log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return a, nil
}

// cacheStore picks Redis when a URL is configured, otherwise the in-process
// LRU.
func (a *App) cacheStore(ctx context.Context) (cache.Store, error) {
	if a.cfg.Redis.URL == "" {
		a.log.Info("using in-process cache", slog.Int("capacity", a.cfg.IPGeo.CacheSize))
		return cache.NewMemory(a.cfg.IPGeo.CacheSize, a.cfg.IPGeo.CacheTTL), nil
	}

	rdb, err := cache.NewRedisClient(ctx, a.cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.redis = rdb
	a.log.Info("using redis cache")
	return cache.NewRedis(rdb, a.cfg.IPGeo.CacheTTL), nil
}

// Serve runs the ops server until ctx is cancelled, then shuts it down
// within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	conns := telemetry.PoolStatsFunc(func() int32 { return a.pool.Stat().TotalConns() })
	telemetry.StartDBStatsCollector(ctx, conns, dbStatsInterval, a.log)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("ops server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ops server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	a.log.Info("shutting down ops server")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown ops server: %w", err)
	}
	return nil
}

// Close releases the Redis client and the database pool.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	a.pool.Close()
}

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the App and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
