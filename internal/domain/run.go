package domain

import "time"

// RunOutcome classifies a completed pipeline run.
type RunOutcome string

const (
	// RunSuccess: every resource fetched, transaction committed.
	RunSuccess RunOutcome = "success"
	// RunPartial: at least one resource failed to fetch, the rest committed.
	RunPartial RunOutcome = "partial"
	// RunFailed: schema or upsert error, transaction rolled back, nothing
	// from this run persisted.
	RunFailed RunOutcome = "failed"
)

// RunStats holds statistics about one fetch→normalize→upsert run.
type RunStats struct {
	Source           string
	Outcome          RunOutcome
	ResourcesFetched int
	ResourcesFailed  int
	FailedResources  []string
	RowsUpserted     int
	Duration         time.Duration
}
