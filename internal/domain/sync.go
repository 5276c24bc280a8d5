package domain

import (
	"fmt"
	"time"
)

// Strategy selects how a synchronization run walks the drive hierarchy.
type Strategy string

const (
	StrategyIncremental Strategy = "incremental"
	StrategyMonth       Strategy = "month"
	StrategyFull        Strategy = "full"
)

// ParseStrategy validates a strategy name coming from a caller.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyIncremental, StrategyMonth, StrategyFull:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown sync strategy %q", s)
}

// ImportOrigin is the provenance tag stored on articles created by a run.
func (s Strategy) ImportOrigin() string {
	return "google_drive_" + string(s)
}

// Session statuses. A session transitions running -> completed or
// running -> failed, exactly once; there is no transition out of a terminal
// state. A process crash leaves the session running forever, which is the
// operator's signal to re-run.
const (
	SessionRunning   = "running"
	SessionCompleted = "completed"
	SessionFailed    = "failed"
)

type Session struct {
	ID           int64      `db:"id"`
	Strategy     Strategy   `db:"strategy"`
	TargetMonth  *string    `db:"target_month"`
	StartedAt    time.Time  `db:"started_at"`
	CompletedAt  *time.Time `db:"completed_at"`
	Status       string     `db:"status"`
	Processed    int        `db:"processed_count"`
	Imported     int        `db:"imported_count"`
	Skipped      int        `db:"skipped_count"`
	ErrorMessage *string    `db:"error_message"`
}

// Log line severities.
const (
	SeverityInfo  = "info"
	SeverityWarn  = "warn"
	SeverityError = "error"
)

// Actions carried by article events published downstream.
const (
	ActionImported = "imported"
	ActionUpdated  = "updated"
)

// LogLine is one append-only audit line attached to a session.
type LogLine struct {
	ID        int64     `db:"id"`
	SessionID int64     `db:"session_id"`
	LoggedAt  time.Time `db:"logged_at"`
	Severity  string    `db:"severity"`
	Message   string    `db:"message"`
	FilePath  *string   `db:"file_path"`
}

// FileError records a per-file failure that did not abort the run.
type FileError struct {
	Path    string
	Message string
}

// Result is what RunSync reports back to its caller. Counts are always
// populated, even on partial failure.
type Result struct {
	Strategy    Strategy
	TargetMonth string
	Processed   int
	Imported    int
	Skipped     int
	Errors      []FileError
	Duration    time.Duration
}
