// Package testhelper starts the shared Postgres and Redis containers used by
// the integration tests and seeds rows through the real schema.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/proximity-backend/migrations"
)

const (
	postgresPort nat.Port = "5432/tcp"
	redisPort    nat.Port = "6379/tcp"
)

const (
	pgUser     = "proximity"
	pgPassword = "proximity"
	pgDatabase = "proximity_test"
)

var (
	pgOnce    sync.Once
	sharedDSN string
	pgInitErr error
)

// SetupTestDB returns a pool on a migrated database. The container is
// started once per test binary and outlives the pool, which t.Cleanup
// closes.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgOnce.Do(func() {
		sharedDSN, pgInitErr = startPostgres()
	})
	if pgInitErr != nil {
		t.Fatalf("testhelper: setup postgres: %v", pgInitErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// DSN returns the connection string of the shared database, starting it if
// needed. Tests that build their own config use it.
func DSN(t *testing.T) string {
	t.Helper()
	SetupTestDB(t)
	return sharedDSN
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Postgres logs "ready" once for the init server and once for the real one.
	addr, err := startContainer(ctx, testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       pgDatabase,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}, postgresPort)
	if err != nil {
		return "", err
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, addr, pgDatabase)
	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// The provider API applies the $$-quoted trigger body of the
	// moderation_actions migration as a single statement.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// startContainer runs req and returns host:port for the mapped port.
func startContainer(ctx context.Context, req testcontainers.ContainerRequest, port nat.Port) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", req.Image, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("%s host: %w", req.Image, err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return "", fmt.Errorf("%s port %s: %w", req.Image, port, err)
	}
	return fmt.Sprintf("%s:%s", host, mapped.Port()), nil
}
