package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"content_sync/internal/domain"
)

type EditHistoryStore struct {
	db *sqlx.DB
}

func NewEditHistoryStore(db *sqlx.DB) *EditHistoryStore {
	return &EditHistoryStore{db: db}
}

func (s *EditHistoryStore) Append(ctx context.Context, entry domain.EditEntry) error {
	query := `
		INSERT INTO edit_history (article_id, field_name, old_value, new_value, edited_by, edited_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := getExecutor(ctx, s.db).ExecContext(ctx, query,
		entry.ArticleID, entry.FieldName, entry.OldValue, entry.NewValue, entry.EditedBy)
	if err != nil {
		return mapError("append edit history", err)
	}
	return nil
}

func (s *EditHistoryStore) ListForArticle(ctx context.Context, articleID string) ([]domain.EditEntry, error) {
	query := `
		SELECT id, article_id, field_name, old_value, new_value, edited_by, edited_at
		FROM edit_history
		WHERE article_id = $1
		ORDER BY edited_at DESC, id DESC`

	rows, err := getExecutor(ctx, s.db).QueryxContext(ctx, query, articleID)
	if err != nil {
		return nil, mapError("list edit history", err)
	}
	defer rows.Close()

	var entries []domain.EditEntry
	for rows.Next() {
		var e domain.EditEntry
		if err := rows.Scan(&e.ID, &e.ArticleID, &e.FieldName, &e.OldValue, &e.NewValue, &e.EditedBy, &e.EditedAt); err != nil {
			return nil, mapError("scan edit history", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
