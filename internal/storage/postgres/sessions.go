package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"content_sync/internal/domain"
)

type SessionStore struct {
	db *sqlx.DB
}

func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Start opens a new session in the running state and returns its id.
func (s *SessionStore) Start(ctx context.Context, strategy domain.Strategy, targetMonth *string) (int64, error) {
	query := `
		INSERT INTO sync_sessions (strategy, target_month, started_at, status)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id`

	var id int64
	err := getExecutor(ctx, s.db).QueryRowxContext(ctx, query, strategy, targetMonth, domain.SessionRunning).Scan(&id)
	if err != nil {
		return 0, mapError("start session", err)
	}
	return id, nil
}

// Complete moves a session to its terminal state. A nil errMsg means
// completed, anything else means failed. Only a running session can be
// completed; finishing twice is a no-op on the second call.
func (s *SessionStore) Complete(ctx context.Context, id int64, processed, imported, skipped int, errMsg *string) error {
	status := domain.SessionCompleted
	if errMsg != nil {
		status = domain.SessionFailed
	}

	query := `
		UPDATE sync_sessions
		SET status = $2, completed_at = NOW(),
			processed_count = $3, imported_count = $4, skipped_count = $5,
			error_message = $6
		WHERE id = $1 AND status = $7`

	_, err := getExecutor(ctx, s.db).ExecContext(ctx, query,
		id, status, processed, imported, skipped, errMsg, domain.SessionRunning)
	if err != nil {
		return mapError("complete session", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id int64) (*domain.Session, error) {
	var session domain.Session
	query := `
		SELECT id, strategy, target_month, started_at, completed_at, status,
			processed_count, imported_count, skipped_count, error_message
		FROM sync_sessions
		WHERE id = $1`

	if err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &session, query, id); err != nil {
		return nil, mapError("get session", err)
	}
	return &session, nil
}

// Recent returns the latest n sessions, newest first.
func (s *SessionStore) Recent(ctx context.Context, n int) ([]domain.Session, error) {
	query := `
		SELECT id, strategy, target_month, started_at, completed_at, status,
			processed_count, imported_count, skipped_count, error_message
		FROM sync_sessions
		ORDER BY started_at DESC
		LIMIT $1`

	var sessions []domain.Session
	if err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &sessions, query, n); err != nil {
		return nil, mapError("list sessions", err)
	}
	return sessions, nil
}

// LastCompleted returns the most recent successfully completed session for a
// strategy. ErrNotFound means no such session exists yet.
func (s *SessionStore) LastCompleted(ctx context.Context, strategy domain.Strategy) (*domain.Session, error) {
	var session domain.Session
	query := `
		SELECT id, strategy, target_month, started_at, completed_at, status,
			processed_count, imported_count, skipped_count, error_message
		FROM sync_sessions
		WHERE strategy = $1 AND status = $2
		ORDER BY completed_at DESC
		LIMIT 1`

	if err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &session, query, strategy, domain.SessionCompleted); err != nil {
		return nil, mapError("last completed session", err)
	}
	return &session, nil
}

// AppendLog writes one audit line. Lines are append-only; nothing updates
// or deletes them.
func (s *SessionStore) AppendLog(ctx context.Context, sessionID int64, severity, message string, filePath *string) error {
	query := `
		INSERT INTO sync_log_lines (session_id, logged_at, severity, message, file_path)
		VALUES ($1, NOW(), $2, $3, $4)`

	_, err := getExecutor(ctx, s.db).ExecContext(ctx, query, sessionID, severity, message, filePath)
	if err != nil {
		return mapError("append session log", err)
	}
	return nil
}

func (s *SessionStore) Logs(ctx context.Context, sessionID int64) ([]domain.LogLine, error) {
	query := `
		SELECT id, session_id, logged_at, severity, message, file_path
		FROM sync_log_lines
		WHERE session_id = $1
		ORDER BY logged_at, id`

	var lines []domain.LogLine
	if err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &lines, query, sessionID); err != nil {
		return nil, mapError("list session logs", err)
	}
	return lines, nil
}
