package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/xuri/excelize/v2"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
)

var (
	// ErrEmptyEntry is returned when the twi or english text is blank.
	ErrEmptyEntry = errors.New("both twi and english are required")
	// ErrDuplicateEntry is returned when the user already submitted the
	// same normalized translation pair.
	ErrDuplicateEntry = errors.New("translation pair already exists")
	// ErrImportUnreadable is returned when the uploaded file cannot be
	// parsed as a spreadsheet.
	ErrImportUnreadable = errors.New("could not read import file")
	// ErrImportTooFewColumns is returned when the sheet has fewer than two
	// columns.
	ErrImportTooFewColumns = errors.New("import file must contain at least two columns")
	// ErrImportColumnNotFound is returned when a named column is missing
	// from the header row.
	ErrImportColumnNotFound = errors.New("named column not found in import file")
)

// EntryReader defines read operations for dataset entries.
type EntryReader interface {
	List(ctx context.Context) ([]models.Entry, error)
	ListByUsername(ctx context.Context, username string) ([]models.Entry, error)
}

// EntryWriter defines write operations for dataset entries.
type EntryWriter interface {
	Save(ctx context.Context, entry models.Entry) error
	SaveBatch(ctx context.Context, entries []models.Entry) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ImportOptions selects which spreadsheet columns map to which fields.
// Empty Twi/English columns default to the first and second column; an
// empty Date column means every imported row is dated today.
type ImportOptions struct {
	TwiColumn     string
	EnglishColumn string
	DateColumn    string
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Inserted          int `json:"inserted"`
	SkippedDuplicates int `json:"skipped_duplicates"`
	SkippedInvalid    int `json:"skipped_invalid"`
}

// DatasetService handles entry submission, bulk import, and per-user views,
// publishing audit events for every mutation.
type DatasetService struct {
	reader      EntryReader
	writer      EntryWriter
	kafkaWriter KafkaWriter
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(reader EntryReader, writer EntryWriter, kafkaWriter KafkaWriter) *DatasetService {
	return &DatasetService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a contribution event to Kafka.
func (s *DatasetService) publishEvent(ctx context.Context, operation, username string, rows int) {
	publishEvent(ctx, s.kafkaWriter, operation, username, rows)
}

// publishEvent publishes a contribution event with a nil-writer fallback,
// shared by the dataset and admin services. Publish failures are logged,
// never propagated: the worksheet mutation already happened.
func publishEvent(ctx context.Context, w KafkaWriter, operation, username string, rows int) {
	event := models.ContributionEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Username:  username,
		Operation: operation,
		Rows:      rows,
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", operation, "rows", rows)
	}
}

// normalizePair lowercases and trims a translation pair for duplicate
// comparison.
func normalizePair(twi, english string) (string, string) {
	return strings.ToLower(strings.TrimSpace(twi)), strings.ToLower(strings.TrimSpace(english))
}

// parseDate returns the date string normalized to ISO 8601, defaulting to
// today when empty or unparseable.
func parseDate(s string) string {
	s = strings.TrimSpace(s)
	if s != "" {
		if d, err := time.Parse(models.DateLayout, s); err == nil {
			return d.Format(models.DateLayout)
		}
	}
	return time.Now().Format(models.DateLayout)
}

// Submit validates and appends a single entry for the user. Duplicate
// detection is scoped to the submitting user's own entries.
func (s *DatasetService) Submit(ctx context.Context, username, date, twi, english string) (models.Entry, error) {
	twi = strings.TrimSpace(twi)
	english = strings.TrimSpace(english)
	if twi == "" || english == "" {
		return models.Entry{}, ErrEmptyEntry
	}

	owned, err := s.reader.ListByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list entries for duplicate check", "username", username, "error", err)
		return models.Entry{}, err
	}

	wantTwi, wantEng := normalizePair(twi, english)
	for _, e := range owned {
		haveTwi, haveEng := normalizePair(e.Twi, e.English)
		if haveTwi == wantTwi && haveEng == wantEng {
			return models.Entry{}, ErrDuplicateEntry
		}
	}

	entry := models.Entry{
		Date:     parseDate(date),
		Twi:      twi,
		English:  english,
		Username: username,
	}

	if err := s.writer.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to save entry", "username", username, "error", err)
		return models.Entry{}, err
	}

	s.publishEvent(ctx, models.OpSubmit, username, 1)

	return entry, nil
}

// Import reads an .xlsx file and appends every valid, non-duplicate row as
// an entry owned by the user. Invalid and duplicate rows are counted and
// skipped; an unreadable file or missing column aborts the whole import.
func (s *DatasetService) Import(ctx context.Context, username string, file io.Reader, opts ImportOptions) (ImportResult, error) {
	var res ImportResult

	f, err := excelize.OpenReader(file)
	if err != nil {
		logger.Log.Errorw("failed to open import file", "username", username, "error", err)
		return res, ErrImportUnreadable
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return res, ErrImportUnreadable
	}

	rows, err := f.GetRows(sheetList[0])
	if err != nil {
		logger.Log.Errorw("failed to read import rows", "username", username, "error", err)
		return res, ErrImportUnreadable
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return res, ErrImportTooFewColumns
	}

	header := rows[0]
	twiIdx, engIdx, dateIdx := 0, 1, -1
	if opts.TwiColumn != "" {
		if twiIdx = columnIndex(header, opts.TwiColumn); twiIdx < 0 {
			return res, ErrImportColumnNotFound
		}
	}
	if opts.EnglishColumn != "" {
		if engIdx = columnIndex(header, opts.EnglishColumn); engIdx < 0 {
			return res, ErrImportColumnNotFound
		}
	}
	if opts.DateColumn != "" {
		if dateIdx = columnIndex(header, opts.DateColumn); dateIdx < 0 {
			return res, ErrImportColumnNotFound
		}
	}

	owned, err := s.reader.ListByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list entries for duplicate check", "username", username, "error", err)
		return res, err
	}

	type pair struct{ twi, eng string }
	seen := make(map[pair]bool, len(owned))
	for _, e := range owned {
		t, en := normalizePair(e.Twi, e.English)
		seen[pair{t, en}] = true
	}

	var batch []models.Entry
	for _, row := range rows[1:] {
		twi, eng := cellAt(row, twiIdx), cellAt(row, engIdx)
		twi = strings.TrimSpace(twi)
		eng = strings.TrimSpace(eng)
		if twi == "" || eng == "" {
			res.SkippedInvalid++
			continue
		}

		t, en := normalizePair(twi, eng)
		if seen[pair{t, en}] {
			res.SkippedDuplicates++
			continue
		}
		seen[pair{t, en}] = true

		date := ""
		if dateIdx >= 0 {
			date = cellAt(row, dateIdx)
		}

		batch = append(batch, models.Entry{
			Date:     parseDate(date),
			Twi:      twi,
			English:  eng,
			Username: username,
		})
	}

	if len(batch) > 0 {
		if err := s.writer.SaveBatch(ctx, batch); err != nil {
			logger.Log.Errorw("failed to save imported entries", "username", username, "rows", len(batch), "error", err)
			return res, err
		}
		s.publishEvent(ctx, models.OpImport, username, len(batch))
	}

	res.Inserted = len(batch)
	return res, nil
}

// EntriesFor returns all entries owned by the user.
func (s *DatasetService) EntriesFor(ctx context.Context, username string) ([]models.Entry, error) {
	entries, err := s.reader.ListByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list user entries", "username", username, "error", err)
		return nil, err
	}
	return entries, nil
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
