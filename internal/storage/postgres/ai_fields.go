package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"content_sync/internal/domain"
)

type AIFieldStore struct {
	db *sqlx.DB
}

func NewAIFieldStore(db *sqlx.DB) *AIFieldStore {
	return &AIFieldStore{db: db}
}

const markerUpsert = `
	INSERT INTO ai_generated_fields (article_id, field_name, ai_generated, confidence, generated_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (article_id, field_name) DO UPDATE SET
		ai_generated = EXCLUDED.ai_generated,
		confidence = EXCLUDED.confidence,
		generated_at = EXCLUDED.generated_at`

func (s *AIFieldStore) InsertMarkers(ctx context.Context, markers []domain.AIFieldMarker) error {
	exec := getExecutor(ctx, s.db)
	for _, m := range markers {
		_, err := exec.ExecContext(ctx, markerUpsert,
			m.ArticleID, m.FieldName, m.AIGenerated, m.Confidence)
		if err != nil {
			return mapError("insert ai field marker", err)
		}
	}
	return nil
}

// MarkManual flips a field to human-origin after an editor changed it.
func (s *AIFieldStore) MarkManual(ctx context.Context, articleID, fieldName string) error {
	marker := domain.AIFieldMarker{
		ArticleID:   articleID,
		FieldName:   fieldName,
		AIGenerated: false,
		Confidence:  1.0,
	}
	return s.InsertMarkers(ctx, []domain.AIFieldMarker{marker})
}

func (s *AIFieldStore) ListForArticle(ctx context.Context, articleID string) ([]domain.AIFieldMarker, error) {
	query := `
		SELECT article_id, field_name, ai_generated, confidence, generated_at
		FROM ai_generated_fields
		WHERE article_id = $1
		ORDER BY field_name`

	rows, err := getExecutor(ctx, s.db).QueryxContext(ctx, query, articleID)
	if err != nil {
		return nil, mapError("list ai field markers", err)
	}
	defer rows.Close()

	var markers []domain.AIFieldMarker
	for rows.Next() {
		var m domain.AIFieldMarker
		if err := rows.Scan(&m.ArticleID, &m.FieldName, &m.AIGenerated, &m.Confidence, &m.GeneratedAt); err != nil {
			return nil, mapError("scan ai field marker", err)
		}
		markers = append(markers, m)
	}
	return markers, rows.Err()
}
