package db

import "time"

// Entry is one exported catalog record.
type Entry struct {
	Kind    string
	EntryID string
	Title   string
	// Payload is the record encoded as JSON.
	Payload string
	RunID   string
}

// LoadRun records one catalog load.
type LoadRun struct {
	RunID        string
	StartedAt    time.Time
	FinishedAt   time.Time
	TotalRecords int
	Counts       []KindCount
}

// KindCount is the outcome for a single dataset within a LoadRun. Error is
// empty when the dataset loaded.
type KindCount struct {
	Kind    string
	Records int
	Error   string
}
