package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/mytenu/zaktwi/internal/models"
	"github.com/mytenu/zaktwi/internal/sheets"
)

// EntryReadRepository serves dataset entries from the cached dataset
// worksheet.
type EntryReadRepository struct {
	store SheetStore
	cache SnapshotCache
	sheet string
	ttl   time.Duration
}

// NewEntryReadRepository creates a read repository over the dataset
// worksheet. The TTL is kept short so duplicate detection and statistics see
// a reasonably fresh view.
func NewEntryReadRepository(store SheetStore, cache SnapshotCache, sheet string, ttl time.Duration) *EntryReadRepository {
	return &EntryReadRepository{store: store, cache: cache, sheet: sheet, ttl: ttl}
}

// List returns the full dataset.
func (r *EntryReadRepository) List(ctx context.Context) ([]models.Entry, error) {
	rows, err := cachedRows(ctx, r.store, r.cache, r.sheet, r.ttl)
	if err != nil {
		return nil, err
	}

	records := sheets.Records(rows)
	entries := make([]models.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, models.EntryFromRecord(rec))
	}
	return entries, nil
}

// ListByUsername returns all entries owned by the given username, matched
// case-insensitively.
func (r *EntryReadRepository) ListByUsername(ctx context.Context, username string) ([]models.Entry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(username))
	owned := make([]models.Entry, 0)
	for _, e := range entries {
		if strings.ToLower(strings.TrimSpace(e.Username)) == want {
			owned = append(owned, e)
		}
	}
	return owned, nil
}

// EntryWriteRepository appends and deletes dataset entries, invalidating the
// dataset snapshot after every successful mutation.
type EntryWriteRepository struct {
	store SheetStore
	cache SnapshotCache
	sheet string
}

// NewEntryWriteRepository creates a write repository over the dataset
// worksheet.
func NewEntryWriteRepository(store SheetStore, cache SnapshotCache, sheet string) *EntryWriteRepository {
	return &EntryWriteRepository{store: store, cache: cache, sheet: sheet}
}

// Save appends a single entry row.
func (r *EntryWriteRepository) Save(ctx context.Context, entry models.Entry) error {
	return r.SaveBatch(ctx, []models.Entry{entry})
}

// SaveBatch appends a batch of entry rows in one call. The cache is only
// invalidated on success.
func (r *EntryWriteRepository) SaveBatch(ctx context.Context, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.Row())
	}

	if err := r.store.AppendRows(ctx, r.sheet, rows); err != nil {
		return err
	}
	return r.cache.Invalidate(ctx, r.sheet)
}

// DeleteByUsername removes every entry owned by the username and returns the
// number of rows deleted. Zero matches is not an error.
func (r *EntryWriteRepository) DeleteByUsername(ctx context.Context, username string) (int, error) {
	deleted, err := deleteRowsByColumn(ctx, r.store, r.sheet, models.EntryColUsername, username)
	if deleted > 0 || err == nil {
		if invErr := r.cache.Invalidate(ctx, r.sheet); invErr != nil && err == nil {
			err = invErr
		}
	}
	return deleted, err
}
