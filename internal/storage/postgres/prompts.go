package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// PromptStore keeps the editable prompt templates used for AI field
// generation. Templates are seeded once and can be tuned without a deploy.
type PromptStore struct {
	db *sqlx.DB
}

func NewPromptStore(db *sqlx.DB) *PromptStore {
	return &PromptStore{db: db}
}

// EnsureDefaults inserts any missing templates without touching ones an
// operator already edited.
func (s *PromptStore) EnsureDefaults(ctx context.Context, defaults map[string]string) error {
	query := `
		INSERT INTO ai_prompt_templates (field_name, prompt, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (field_name) DO NOTHING`

	exec := getExecutor(ctx, s.db)
	for field, prompt := range defaults {
		if _, err := exec.ExecContext(ctx, query, field, prompt); err != nil {
			return mapError("seed prompt template", err)
		}
	}
	return nil
}

func (s *PromptStore) Get(ctx context.Context, fieldName string) (string, error) {
	var prompt string
	query := "SELECT prompt FROM ai_prompt_templates WHERE field_name = $1"
	if err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &prompt, query, fieldName); err != nil {
		return "", mapError("get prompt template", err)
	}
	return prompt, nil
}

func (s *PromptStore) Upsert(ctx context.Context, fieldName, prompt string) error {
	query := `
		INSERT INTO ai_prompt_templates (field_name, prompt, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (field_name) DO UPDATE SET
			prompt = EXCLUDED.prompt,
			updated_at = EXCLUDED.updated_at`

	if _, err := getExecutor(ctx, s.db).ExecContext(ctx, query, fieldName, prompt); err != nil {
		return mapError("upsert prompt template", err)
	}
	return nil
}
