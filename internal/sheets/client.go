package sheets

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/mytenu/zaktwi/internal/logger"
)

// Client wraps the Google Sheets API for a single spreadsheet. Every remote
// call first passes the injected blocking limiter, so calls through one
// Client are spaced at least the limiter's interval apart.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	limiter       *rate.Limiter

	mu       sync.Mutex
	sheetIDs map[string]int64 // worksheet title -> sheetId, resolved lazily
}

// NewClient creates a Sheets client authenticated with a service-account
// credentials file.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID string, limiter *rate.Limiter) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		limiter:       limiter,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// Rows fetches the full value range of a worksheet, header row included.
func (c *Client) Rows(ctx context.Context, sheet string) ([][]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet).Context(ctx).Do()

	logger.Log.Infow("sheets get",
		"sheet", sheet,
		"rows", respLen(resp),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("get %q values: %w", sheet, err)
	}

	return toStringRows(resp.Values), nil
}

// RowAt fetches a single 1-indexed row. A blank row returns nil without
// error, so callers can tell "row gone" from "call failed".
func (c *Client) RowAt(ctx context.Context, sheet string, row int) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	rng := fmt.Sprintf("%s!A%d:ZZ%d", sheet, row, row)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()

	logger.Log.Infow("sheets get row",
		"sheet", sheet,
		"row", row,
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("get %q row %d: %w", sheet, row, err)
	}

	rows := toStringRows(resp.Values)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// AppendRows appends rows to the end of a worksheet.
func (c *Client) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	vr := &sheets.ValueRange{Values: toInterfaceRows(rows)}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()

	logger.Log.Infow("sheets append",
		"sheet", sheet,
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("append to %q: %w", sheet, err)
	}
	return nil
}

// DeleteRow removes a single 1-indexed row from a worksheet.
func (c *Client) DeleteRow(ctx context.Context, sheet string, row int) error {
	sheetID, err := c.sheetID(ctx, sheet)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1), // API range is 0-indexed, half-open
					EndIndex:   int64(row),
				},
			},
		}},
	}
	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()

	logger.Log.Infow("sheets delete row",
		"sheet", sheet,
		"row", row,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("delete row %d of %q: %w", row, sheet, err)
	}
	return nil
}

// sheetID resolves a worksheet title to its numeric sheetId, caching the
// mapping after the first spreadsheet metadata fetch.
func (c *Client) sheetID(ctx context.Context, sheet string) (int64, error) {
	c.mu.Lock()
	id, ok := c.sheetIDs[sheet]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet metadata: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			c.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}

	id, ok = c.sheetIDs[sheet]
	if !ok {
		return 0, fmt.Errorf("worksheet %q not found", sheet)
	}
	return id, nil
}

func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, 0, len(v))
		for _, cell := range v {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		row := make([]interface{}, 0, len(r))
		for _, cell := range r {
			row = append(row, cell)
		}
		values = append(values, row)
	}
	return values
}

func respLen(resp *sheets.ValueRange) int {
	if resp == nil {
		return 0
	}
	return len(resp.Values)
}
