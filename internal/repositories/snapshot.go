package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mytenu/zaktwi/internal/logger"
)

// ErrSnapshotMiss is returned when no fresh snapshot exists for a worksheet.
var ErrSnapshotMiss = errors.New("worksheet snapshot not in cache")

// SnapshotCacheRepository stores whole-worksheet snapshots in Redis with a
// per-write TTL. Values are the raw worksheet rows, JSON-encoded, so a cache
// hit reproduces the last fetch byte for byte.
type SnapshotCacheRepository struct {
	client *redis.Client
}

// NewSnapshotCacheRepository creates a new repository instance.
func NewSnapshotCacheRepository(client *redis.Client) *SnapshotCacheRepository {
	return &SnapshotCacheRepository{client: client}
}

func snapshotKey(sheet string) string {
	return fmt.Sprintf("sheet_snapshot:%s", sheet)
}

// Get returns the cached snapshot for a worksheet, or ErrSnapshotMiss when
// the key is absent or expired.
func (r *SnapshotCacheRepository) Get(ctx context.Context, sheet string) ([][]string, error) {
	key := snapshotKey(sheet)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("snapshot cache get",
			"key", key,
			"hit", false,
			"error", err,
		)
		if err == redis.Nil {
			return nil, ErrSnapshotMiss
		}
		return nil, err
	}

	var rows [][]string
	if err := json.Unmarshal(val, &rows); err != nil {
		return nil, err
	}

	logger.Log.Infow("snapshot cache get",
		"key", key,
		"hit", true,
		"rows", len(rows),
	)

	return rows, nil
}

// Set stores a worksheet snapshot with the given TTL.
func (r *SnapshotCacheRepository) Set(ctx context.Context, sheet string, rows [][]string, ttl time.Duration) error {
	key := snapshotKey(sheet)

	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Infow("snapshot cache set",
		"key", key,
		"rows", len(rows),
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Invalidate drops the cached snapshot so the next read refetches.
func (r *SnapshotCacheRepository) Invalidate(ctx context.Context, sheet string) error {
	key := snapshotKey(sheet)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("snapshot cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
