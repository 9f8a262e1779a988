package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/mytenu/zaktwi/internal/models"
	"github.com/mytenu/zaktwi/internal/sheets"
)

// UserReadRepository serves user records from the cached users worksheet.
type UserReadRepository struct {
	store SheetStore
	cache SnapshotCache
	sheet string
	ttl   time.Duration
}

// NewUserReadRepository creates a read repository over the users worksheet.
// Registrations are infrequent, so the TTL is typically longer than the
// dataset's.
func NewUserReadRepository(store SheetStore, cache SnapshotCache, sheet string, ttl time.Duration) *UserReadRepository {
	return &UserReadRepository{store: store, cache: cache, sheet: sheet, ttl: ttl}
}

// List returns all registered users.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := cachedRows(ctx, r.store, r.cache, r.sheet, r.ttl)
	if err != nil {
		return nil, err
	}

	records := sheets.Records(rows)
	users := make([]models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, models.UserFromRecord(rec))
	}
	return users, nil
}

// GetByUsername returns the user with the given username, matched
// case-insensitively, or nil when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(username))
	for i := range users {
		if strings.ToLower(strings.TrimSpace(users[i].Username)) == want {
			return &users[i], nil
		}
	}
	return nil, nil
}

// UserWriteRepository appends and deletes user records, invalidating the
// users snapshot after every successful mutation.
type UserWriteRepository struct {
	store SheetStore
	cache SnapshotCache
	sheet string
}

// NewUserWriteRepository creates a write repository over the users worksheet.
func NewUserWriteRepository(store SheetStore, cache SnapshotCache, sheet string) *UserWriteRepository {
	return &UserWriteRepository{store: store, cache: cache, sheet: sheet}
}

// Save appends a new user row. The cache is only invalidated on success; a
// failed append leaves the snapshot stale-but-consistent.
func (r *UserWriteRepository) Save(ctx context.Context, user models.User) error {
	if err := r.store.AppendRows(ctx, r.sheet, [][]string{user.Row()}); err != nil {
		return err
	}
	return r.cache.Invalidate(ctx, r.sheet)
}

// DeleteByUsername removes every row matching the username and returns the
// number of rows deleted. Zero matches is not an error.
func (r *UserWriteRepository) DeleteByUsername(ctx context.Context, username string) (int, error) {
	deleted, err := deleteRowsByColumn(ctx, r.store, r.sheet, models.UserColUsername, username)
	if deleted > 0 || err == nil {
		if invErr := r.cache.Invalidate(ctx, r.sheet); invErr != nil && err == nil {
			err = invErr
		}
	}
	return deleted, err
}
