package sheets

// Records converts a raw worksheet value range into header-keyed records,
// one per data row. The first row is the header; columns missing from a
// short row map to the empty string. An empty or header-only range yields
// no records.
func Records(values [][]string) []map[string]string {
	if len(values) < 2 {
		return nil
	}

	header := values[0]
	records := make([]map[string]string, 0, len(values)-1)

	for _, row := range values[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	return records
}
