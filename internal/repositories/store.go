package repositories

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mytenu/zaktwi/internal/logger"
)

// SheetStore defines the rate-limited remote worksheet operations the
// repositories depend on.
type SheetStore interface {
	Rows(ctx context.Context, sheet string) ([][]string, error)
	RowAt(ctx context.Context, sheet string, row int) ([]string, error)
	AppendRows(ctx context.Context, sheet string, rows [][]string) error
	DeleteRow(ctx context.Context, sheet string, row int) error
}

// SnapshotCache defines the worksheet snapshot cache the read repositories
// depend on.
type SnapshotCache interface {
	Get(ctx context.Context, sheet string) ([][]string, error)
	Set(ctx context.Context, sheet string, rows [][]string, ttl time.Duration) error
	Invalidate(ctx context.Context, sheet string) error
}

// cachedRows serves a worksheet from the snapshot cache, falling back to a
// rate-limited remote fetch on a miss or a cache failure. A failed Set is
// logged and ignored: the fetch already succeeded, only the next read pays.
func cachedRows(ctx context.Context, store SheetStore, cache SnapshotCache, sheet string, ttl time.Duration) ([][]string, error) {
	rows, err := cache.Get(ctx, sheet)
	if err == nil {
		return rows, nil
	}
	if err != ErrSnapshotMiss {
		logger.Log.Warnw("snapshot cache unavailable, fetching directly", "sheet", sheet, "error", err)
	}

	rows, err = store.Rows(ctx, sheet)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, sheet, rows, ttl); err != nil {
		logger.Log.Warnw("failed to store worksheet snapshot", "sheet", sheet, "error", err)
	}

	return rows, nil
}

// deleteRowsByColumn deletes every data row whose column value matches,
// case-insensitively and trimmed. It works from a fresh cache-bypassing
// fetch so row positions are current, deletes from the highest row index
// down so earlier deletions do not shift pending positions, and re-reads
// each row immediately before deleting it, skipping rows whose value no
// longer matches. Returns the number of rows deleted.
func deleteRowsByColumn(ctx context.Context, store SheetStore, sheet, column, value string) (int, error) {
	rows, err := store.Rows(ctx, sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, nil
	}

	col := -1
	for i, name := range rows[0] {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, nil
	}

	want := strings.ToLower(strings.TrimSpace(value))

	// Header is sheet row 1, so data row i is sheet row i+2.
	var targets []int
	for i, row := range rows[1:] {
		if col < len(row) && strings.ToLower(strings.TrimSpace(row[col])) == want {
			targets = append(targets, i+2)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(targets)))

	deleted := 0
	for _, rowIdx := range targets {
		current, err := store.RowAt(ctx, sheet, rowIdx)
		if err != nil {
			return deleted, err
		}
		if current == nil || col >= len(current) ||
			strings.ToLower(strings.TrimSpace(current[col])) != want {
			logger.Log.Warnw("row changed since fetch, skipping delete",
				"sheet", sheet,
				"row", rowIdx,
			)
			continue
		}

		if err := store.DeleteRow(ctx, sheet, rowIdx); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}
