package models

// Column names of the dataset worksheet header row.
const (
	EntryColDate     = "date"
	EntryColTwi      = "twi"
	EntryColEnglish  = "english"
	EntryColUsername = "username"
)

// EntryColumns is the dataset worksheet column order used for appended rows.
var EntryColumns = []string{
	EntryColDate,
	EntryColTwi,
	EntryColEnglish,
	EntryColUsername,
}

// DateLayout is the ISO 8601 date format stored in the date column.
const DateLayout = "2006-01-02"

// Entry represents one Twi/English sentence pair in the dataset worksheet.
type Entry struct {
	Date     string `json:"date"`     // ISO 8601 submission date
	Twi      string `json:"twi"`      // Twi sentence
	English  string `json:"english"`  // English translation
	Username string `json:"username"` // Contributing user
}

// Row returns the entry as a worksheet row in EntryColumns order.
func (e Entry) Row() []string {
	return []string{e.Date, e.Twi, e.English, e.Username}
}

// EntryFromRecord builds an Entry from a header-keyed worksheet record.
func EntryFromRecord(rec map[string]string) Entry {
	return Entry{
		Date:     rec[EntryColDate],
		Twi:      rec[EntryColTwi],
		English:  rec[EntryColEnglish],
		Username: rec[EntryColUsername],
	}
}
