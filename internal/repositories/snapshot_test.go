package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSnapshotCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	// Ping to ensure connection
	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSnapshotCacheRepository(rdb)

	rows := [][]string{
		{"date", "twi", "english", "username"},
		{"2026-08-25", "Me da wo ase", "Thank you", "abena"},
	}

	t.Run("Set and Get snapshot", func(t *testing.T) {
		err := repo.Set(ctx, "dataset", rows, time.Minute)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "dataset")
		assert.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("Get missing sheet returns miss", func(t *testing.T) {
		_, err := repo.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrSnapshotMiss)
	})

	t.Run("Invalidate drops the snapshot", func(t *testing.T) {
		err := repo.Set(ctx, "users", rows, time.Minute)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, "users")
		assert.NoError(t, err)

		_, err = repo.Get(ctx, "users")
		assert.ErrorIs(t, err, ErrSnapshotMiss)
	})

	t.Run("Snapshot expires after the TTL", func(t *testing.T) {
		err := repo.Set(ctx, "expiring", rows, 2*time.Second)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, "expiring")
		assert.ErrorIs(t, err, ErrSnapshotMiss)
	})
}
