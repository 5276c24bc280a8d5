package service

import (
	"context"
	"fmt"
	"log/slog"

	"content_sync/internal/domain"
)

// Editor applies manual field edits: the article row, the edit history and
// the AI-origin marker change together or not at all.
type Editor struct {
	articles ArticleStore
	aiFields AIFieldStore
	history  EditHistoryStore
	tx       TransactionManager
	logger   *slog.Logger
}

func NewEditor(articles ArticleStore, aiFields AIFieldStore, history EditHistoryStore, tx TransactionManager, logger *slog.Logger) *Editor {
	return &Editor{articles: articles, aiFields: aiFields, history: history, tx: tx, logger: logger}
}

func (e *Editor) UpdateField(ctx context.Context, articleID, fieldName, value, editedBy string) error {
	article, err := e.articles.GetByArticleID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("load article: %w", err)
	}

	oldValue, err := fieldValue(article, fieldName)
	if err != nil {
		return err
	}

	err = e.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := e.history.Append(txCtx, domain.EditEntry{
			ArticleID: articleID,
			FieldName: fieldName,
			OldValue:  oldValue,
			NewValue:  value,
			EditedBy:  editedBy,
		}); err != nil {
			return err
		}
		if err := e.articles.UpdateField(txCtx, articleID, fieldName, value); err != nil {
			return err
		}
		return e.aiFields.MarkManual(txCtx, articleID, fieldName)
	})
	if err != nil {
		return fmt.Errorf("update field %s: %w", fieldName, err)
	}

	e.logger.Info("article field edited",
		"article_id", articleID, "field", fieldName, "edited_by", editedBy)
	return nil
}

func fieldValue(a *domain.Article, fieldName string) (string, error) {
	switch fieldName {
	case domain.FieldTitle:
		return a.Title, nil
	case domain.FieldLead:
		return a.Lead, nil
	case domain.FieldBody:
		return a.Body, nil
	case domain.FieldTitleHotnews:
		return a.TitleHotnews, nil
	case domain.FieldTitleSocial:
		return a.TitleSocial, nil
	case domain.FieldTitleSeo:
		return a.TitleSeo, nil
	}
	return "", fmt.Errorf("field %q is not editable", fieldName)
}
