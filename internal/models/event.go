package models

// Contribution event operations published to the audit topic.
const (
	OpSubmit              = "submit"
	OpImport              = "import"
	OpDeleteUser          = "delete_user"
	OpDeleteContributions = "delete_contributions"
)

// ContributionEvent describes a dataset mutation for the audit log.
type ContributionEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds) of the mutation
	Username  string `json:"username"`  // User the mutation concerns
	Operation string `json:"operation"` // One of the Op* constants
	Rows      int    `json:"rows"`      // Number of worksheet rows affected
}
