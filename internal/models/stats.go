package models

// Contribution is a per-user entry count in the dataset.
type Contribution struct {
	Username string `json:"username"` // Contributing user
	Entries  int    `json:"entries"`  // Number of entries owned by the user
}

// DatasetStats aggregates dataset-wide statistics for the admin dashboard.
type DatasetStats struct {
	TotalEntries      int            `json:"total_entries"`        // Total dataset rows
	TotalUsers        int            `json:"total_users"`          // Total registered users
	AvgEntriesPerUser float64        `json:"avg_entries_per_user"` // TotalEntries / max(TotalUsers, 1)
	Contributions     []Contribution `json:"contributions"`        // Per-user counts, descending
}
