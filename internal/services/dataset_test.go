package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mytenu/zaktwi/internal/models"
)

func TestDatasetServiceSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)

		reader.EXPECT().ListByUsername(ctx, "abena").Return(nil, nil)
		writer.EXPECT().
			Save(ctx, models.Entry{
				Date:     "2026-08-25",
				Twi:      "Me da wo ase",
				English:  "Thank you",
				Username: "abena",
			}).
			Return(nil)

		svc := NewDatasetService(reader, writer, nil)

		entry, err := svc.Submit(ctx, "abena", "2026-08-25", "Me da wo ase", "Thank you")
		assert.NoError(t, err)
		assert.Equal(t, "2026-08-25", entry.Date)
		assert.Equal(t, "abena", entry.Username)
	})

	t.Run("publishes an audit event", func(t *testing.T) {
		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)
		kafkaWriter := NewMockKafkaWriter(ctrl)

		reader.EXPECT().ListByUsername(ctx, "abena").Return(nil, nil)
		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		svc := NewDatasetService(reader, writer, kafkaWriter)

		_, err := svc.Submit(ctx, "abena", "2026-08-25", "Me da wo ase", "Thank you")
		assert.NoError(t, err)
	})

	t.Run("empty date defaults to today", func(t *testing.T) {
		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)

		reader.EXPECT().ListByUsername(ctx, "abena").Return(nil, nil)
		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewDatasetService(reader, writer, nil)

		entry, err := svc.Submit(ctx, "abena", "", "Akwaaba", "Welcome")
		assert.NoError(t, err)
		assert.Equal(t, time.Now().Format(models.DateLayout), entry.Date)
	})

	t.Run("unparseable date defaults to today", func(t *testing.T) {
		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)

		reader.EXPECT().ListByUsername(ctx, "abena").Return(nil, nil)
		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewDatasetService(reader, writer, nil)

		entry, err := svc.Submit(ctx, "abena", "25/08/2026", "Akwaaba", "Welcome")
		assert.NoError(t, err)
		assert.Equal(t, time.Now().Format(models.DateLayout), entry.Date)
	})

	t.Run("blank twi or english", func(t *testing.T) {
		svc := NewDatasetService(nil, nil, nil)

		_, err := svc.Submit(ctx, "abena", "", "  ", "Thank you")
		assert.ErrorIs(t, err, ErrEmptyEntry)

		_, err = svc.Submit(ctx, "abena", "", "Me da wo ase", "")
		assert.ErrorIs(t, err, ErrEmptyEntry)
	})

	t.Run("duplicate pair is case-insensitive", func(t *testing.T) {
		reader := NewMockEntryReader(ctrl)

		reader.EXPECT().
			ListByUsername(ctx, "abena").
			Return([]models.Entry{
				{Twi: "Me Da Wo Ase", English: "THANK YOU", Username: "abena"},
			}, nil)

		svc := NewDatasetService(reader, nil, nil)

		_, err := svc.Submit(ctx, "abena", "", "me da wo ase", "thank you")
		assert.ErrorIs(t, err, ErrDuplicateEntry)
	})

	t.Run("same pair by another user is accepted", func(t *testing.T) {
		// the duplicate check is scoped to the submitting user's own rows
		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)

		reader.EXPECT().ListByUsername(ctx, "kofi").Return(nil, nil)
		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		svc := NewDatasetService(reader, writer, nil)

		_, err := svc.Submit(ctx, "kofi", "", "Me da wo ase", "Thank you")
		assert.NoError(t, err)
	})
}

func buildXLSX(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestDatasetServiceImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("inserts valid rows and skips the rest", func(t *testing.T) {
		buf := buildXLSX(t, [][]interface{}{
			{"Twi", "English", "Date"},
			{"Akwaaba", "Welcome", "2026-08-20"},
			{"Me da wo ase", "Thank you", ""},
			{"", "missing twi", ""},
			{"Wo ho te sɛn", "How are you", "2026-08-21"},
			{"wo ho te sɛn", "HOW ARE YOU", ""}, // duplicate within the file
			{"Ɛte sɛn", "What's up", ""},        // duplicate of an owned row
		})

		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)

		reader.EXPECT().
			ListByUsername(ctx, "abena").
			Return([]models.Entry{
				{Twi: "ɛte sɛn", English: "what's up", Username: "abena"},
			}, nil)

		today := time.Now().Format(models.DateLayout)
		writer.EXPECT().
			SaveBatch(ctx, []models.Entry{
				{Date: "2026-08-20", Twi: "Akwaaba", English: "Welcome", Username: "abena"},
				{Date: today, Twi: "Me da wo ase", English: "Thank you", Username: "abena"},
				{Date: "2026-08-21", Twi: "Wo ho te sɛn", English: "How are you", Username: "abena"},
			}).
			Return(nil)

		svc := NewDatasetService(reader, writer, nil)

		res, err := svc.Import(ctx, "abena", buf, ImportOptions{
			TwiColumn:     "Twi",
			EnglishColumn: "English",
			DateColumn:    "Date",
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, res.Inserted)
		assert.Equal(t, 2, res.SkippedDuplicates)
		assert.Equal(t, 1, res.SkippedInvalid)
	})

	t.Run("defaults to the first two columns", func(t *testing.T) {
		buf := buildXLSX(t, [][]interface{}{
			{"anything", "goes"},
			{"Akwaaba", "Welcome"},
		})

		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)

		reader.EXPECT().ListByUsername(ctx, "abena").Return(nil, nil)
		writer.EXPECT().
			SaveBatch(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []models.Entry) error {
				require.Len(t, batch, 1)
				assert.Equal(t, "Akwaaba", batch[0].Twi)
				assert.Equal(t, "Welcome", batch[0].English)
				return nil
			})

		svc := NewDatasetService(reader, writer, nil)

		res, err := svc.Import(ctx, "abena", buf, ImportOptions{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Inserted)
	})

	t.Run("nothing to insert skips the batch write", func(t *testing.T) {
		buf := buildXLSX(t, [][]interface{}{
			{"Twi", "English"},
			{"Akwaaba", "Welcome"},
		})

		reader := NewMockEntryReader(ctrl)
		writer := NewMockEntryWriter(ctrl)

		reader.EXPECT().
			ListByUsername(ctx, "abena").
			Return([]models.Entry{
				{Twi: "akwaaba", English: "welcome", Username: "abena"},
			}, nil)

		svc := NewDatasetService(reader, writer, nil)

		res, err := svc.Import(ctx, "abena", buf, ImportOptions{})
		assert.NoError(t, err)
		assert.Equal(t, 0, res.Inserted)
		assert.Equal(t, 1, res.SkippedDuplicates)
	})

	t.Run("named column not found", func(t *testing.T) {
		buf := buildXLSX(t, [][]interface{}{
			{"Twi", "English"},
			{"Akwaaba", "Welcome"},
		})

		svc := NewDatasetService(nil, nil, nil)

		_, err := svc.Import(ctx, "abena", buf, ImportOptions{TwiColumn: "Sentence"})
		assert.ErrorIs(t, err, ErrImportColumnNotFound)
	})

	t.Run("fewer than two columns", func(t *testing.T) {
		buf := buildXLSX(t, [][]interface{}{
			{"Twi"},
			{"Akwaaba"},
		})

		svc := NewDatasetService(nil, nil, nil)

		_, err := svc.Import(ctx, "abena", buf, ImportOptions{})
		assert.ErrorIs(t, err, ErrImportTooFewColumns)
	})

	t.Run("unreadable file", func(t *testing.T) {
		svc := NewDatasetService(nil, nil, nil)

		_, err := svc.Import(ctx, "abena", bytes.NewBufferString("this is not a spreadsheet"), ImportOptions{})
		assert.ErrorIs(t, err, ErrImportUnreadable)
	})
}

func TestDatasetServiceEntriesFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	entries := []models.Entry{
		{Date: "2026-08-24", Twi: "Akwaaba", English: "Welcome", Username: "abena"},
	}

	reader := NewMockEntryReader(ctrl)
	reader.EXPECT().ListByUsername(ctx, "abena").Return(entries, nil)

	svc := NewDatasetService(reader, nil, nil)

	got, err := svc.EntriesFor(ctx, "abena")
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}
