package models

// DefaultJobStatus is applied when a job is created without an explicit status.
const DefaultJobStatus = "Applied"

// JobDB represents a job application record in the database.
type JobDB struct {
	ID          int64   `json:"id" db:"id"`
	OwnerID     int64   `json:"owner_id" db:"owner_id"`
	Title       string  `json:"title" db:"title"`
	Company     string  `json:"company" db:"company"`
	Location    *string `json:"location" db:"location"`
	Status      string  `json:"status" db:"status"`
	DateApplied Date    `json:"date_applied" db:"date_applied"`
}

// JobFields holds the mutable fields of a job, as supplied by a client
// on create and full-replace update.
type JobFields struct {
	Title       string  `json:"title" db:"title"`
	Company     string  `json:"company" db:"company"`
	Location    *string `json:"location" db:"location"`
	Status      string  `json:"status" db:"status"`
	DateApplied Date    `json:"date_applied" db:"date_applied"`
}
