package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"content_sync/internal/domain"
)

const uniqueViolation = "23505"

// mapError converts driver-level errors into domain sentinels so callers can
// branch with errors.Is instead of inspecting SQLSTATE codes.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
