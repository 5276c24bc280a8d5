package domain

import "errors"

// Error taxonomy shared across the pipeline. Storage and drive adapters map
// their driver-level failures onto these sentinels so callers branch with
// errors.Is instead of matching message strings.
var (
	// ErrNotFound: a month/article/record is absent during normal walking.
	// Callers treat this as a legitimate, common condition.
	ErrNotFound = errors.New("not found")

	// ErrTargetNotFound: a caller-named month or article is absent. Unlike
	// ErrNotFound this is a user-facing error that aborts the invocation.
	ErrTargetNotFound = errors.New("target not found")

	// ErrDuplicateKey: a unique-constraint conflict. During import this is a
	// legitimate outcome (duplicate article), counted as skipped.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrAuthExpired: remote-store credentials are expired or invalid and
	// could not be refreshed. The whole run aborts with a re-authentication
	// signal rather than a generic failure.
	ErrAuthExpired = errors.New("drive authorization expired")
)
