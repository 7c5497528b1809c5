package testhelper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce    sync.Once
	sharedRedis  string
	redisInitErr error
)

// SetupTestRedis starts a shared Redis container once per test run and
// returns its redis:// URL.
func SetupTestRedis(t *testing.T) string {
	t.Helper()

	redisOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		var addr string
		addr, redisInitErr = startContainer(ctx, testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{string(redisPort)},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		}, redisPort)
		sharedRedis = "redis://" + addr + "/0"
	})
	if redisInitErr != nil {
		t.Fatalf("testhelper: setup redis: %v", redisInitErr)
	}
	return sharedRedis
}
