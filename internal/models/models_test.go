package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRowRoundTrip(t *testing.T) {
	user := User{
		Name:               "Abena Mensah",
		PaymentPhone:       "0241234567",
		CallContact:        "0201234567",
		Username:           "abena",
		PasswordHash:       "$2a$10$hash",
		Email:              "abena@example.com",
		PaymentAccountName: "Abena Mensah",
		PaymentNetwork:     "MoMo",
	}

	row := user.Row()
	require.Len(t, row, len(UserColumns))

	rec := make(map[string]string, len(UserColumns))
	for i, col := range UserColumns {
		rec[col] = row[i]
	}
	assert.Equal(t, user, UserFromRecord(rec))
}

func TestUserPasswordHashNeverSerialized(t *testing.T) {
	data, err := json.Marshal(User{Username: "abena", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
}

func TestEntryRowRoundTrip(t *testing.T) {
	entry := Entry{
		Date:     "2026-08-25",
		Twi:      "Me da wo ase",
		English:  "Thank you",
		Username: "abena",
	}

	row := entry.Row()
	require.Len(t, row, len(EntryColumns))

	rec := make(map[string]string, len(EntryColumns))
	for i, col := range EntryColumns {
		rec[col] = row[i]
	}
	assert.Equal(t, entry, EntryFromRecord(rec))
}

func TestEntryFromRecordMissingColumns(t *testing.T) {
	entry := EntryFromRecord(map[string]string{EntryColTwi: "Akwaaba"})
	assert.Equal(t, Entry{Twi: "Akwaaba"}, entry)
}
