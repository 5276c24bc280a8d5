package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"content_sync/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// articleRow mirrors the articles table. The list-valued fields live in
// jsonb columns.
type articleRow struct {
	ID               int64           `db:"id"`
	ArticleID        string          `db:"article_id"`
	Title            string          `db:"title"`
	TitleHotnews     string          `db:"title_hotnews"`
	TitleSocial      string          `db:"title_social"`
	TitleSeo         string          `db:"title_seo"`
	Lead             string          `db:"lead"`
	Body             string          `db:"body"`
	Author           string          `db:"author"`
	Sources          json.RawMessage `db:"sources"`
	Categories       json.RawMessage `db:"categories"`
	Tags             json.RawMessage `db:"tags"`
	Status           string          `db:"status"`
	ImportedFrom     string          `db:"imported_from"`
	DrivePath        string          `db:"drive_path"`
	OriginalFilename string          `db:"original_filename"`
	ImageFilename    *string         `db:"image_filename"`
	PhotoAuthor      *string         `db:"photo_author"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r *articleRow) toDomain() (*domain.Article, error) {
	a := &domain.Article{
		ID:               r.ID,
		ArticleID:        r.ArticleID,
		Title:            r.Title,
		TitleHotnews:     r.TitleHotnews,
		TitleSocial:      r.TitleSocial,
		TitleSeo:         r.TitleSeo,
		Lead:             r.Lead,
		Body:             r.Body,
		Author:           r.Author,
		Status:           r.Status,
		ImportedFrom:     r.ImportedFrom,
		DrivePath:        r.DrivePath,
		OriginalFilename: r.OriginalFilename,
		ImageFilename:    r.ImageFilename,
		PhotoAuthor:      r.PhotoAuthor,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	for _, col := range []struct {
		raw  json.RawMessage
		dest *[]string
	}{
		{r.Sources, &a.Sources},
		{r.Categories, &a.Categories},
		{r.Tags, &a.Tags},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return nil, fmt.Errorf("decode article %s: %w", r.ArticleID, err)
		}
	}
	return a, nil
}

func marshalList(values []string) (json.RawMessage, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) error {
	sources, err := marshalList(article.Sources)
	if err != nil {
		return err
	}
	categories, err := marshalList(article.Categories)
	if err != nil {
		return err
	}
	tags, err := marshalList(article.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO articles (
			article_id, title, title_hotnews, title_social, title_seo,
			lead, body, author, sources, categories, tags, status,
			imported_from, drive_path, original_filename, image_filename, photo_author
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		RETURNING id, created_at, updated_at`

	row := getExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		article.ArticleID,
		article.Title,
		article.TitleHotnews,
		article.TitleSocial,
		article.TitleSeo,
		article.Lead,
		article.Body,
		article.Author,
		sources,
		categories,
		tags,
		article.Status,
		article.ImportedFrom,
		article.DrivePath,
		article.OriginalFilename,
		article.ImageFilename,
		article.PhotoAuthor,
	)
	if err := row.Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt); err != nil {
		return mapError("insert article", err)
	}
	return nil
}

const articleColumns = `
	id, article_id, title, title_hotnews, title_social, title_seo,
	lead, body, author, sources, categories, tags, status,
	imported_from, drive_path, original_filename, image_filename, photo_author,
	created_at, updated_at`

func (s *ArticleStore) getOne(ctx context.Context, op, where string, args ...any) (*domain.Article, error) {
	var row articleRow
	query := "SELECT" + articleColumns + " FROM articles WHERE " + where
	if err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &row, query, args...); err != nil {
		return nil, mapError(op, err)
	}
	return row.toDomain()
}

func (s *ArticleStore) GetByArticleID(ctx context.Context, articleID string) (*domain.Article, error) {
	return s.getOne(ctx, "get article", "article_id = $1", articleID)
}

// GetByTitle looks up an article by exact title. Titles are not unique in
// general; the oldest match wins so repeated imports stay stable.
func (s *ArticleStore) GetByTitle(ctx context.Context, title string) (*domain.Article, error) {
	return s.getOne(ctx, "get article by title", "title = $1 ORDER BY id LIMIT 1", title)
}

func (s *ArticleStore) GetByPath(ctx context.Context, drivePath, originalFilename string) (*domain.Article, error) {
	return s.getOne(ctx, "get article by path",
		"drive_path = $1 AND original_filename = $2 ORDER BY id LIMIT 1",
		drivePath, originalFilename)
}

// SetImage attaches an image to an article and derives the photo author
// from the filename's credit segment.
func (s *ArticleStore) SetImage(ctx context.Context, articleID, imageFilename string) error {
	query := `
		UPDATE articles
		SET image_filename = $2, photo_author = $3, updated_at = NOW()
		WHERE article_id = $1`

	res, err := getExecutor(ctx, s.db).ExecContext(ctx, query,
		articleID, imageFilename, domain.PhotoCredit(imageFilename))
	if err != nil {
		return mapError("set article image", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("set article image: %w", domain.ErrNotFound)
	}
	return nil
}

// editableColumns lists the article fields an editor may change through
// UpdateField. Anything else is rejected before touching the database.
var editableColumns = map[string]string{
	domain.FieldTitle:        "title",
	domain.FieldLead:         "lead",
	domain.FieldBody:         "body",
	domain.FieldTitleHotnews: "title_hotnews",
	domain.FieldTitleSocial:  "title_social",
	domain.FieldTitleSeo:     "title_seo",
}

func (s *ArticleStore) UpdateField(ctx context.Context, articleID, fieldName, value string) error {
	column, ok := editableColumns[fieldName]
	if !ok {
		return fmt.Errorf("field %q is not editable", fieldName)
	}

	query := fmt.Sprintf(
		"UPDATE articles SET %s = $2, updated_at = NOW() WHERE article_id = $1", column)
	res, err := getExecutor(ctx, s.db).ExecContext(ctx, query, articleID, value)
	if err != nil {
		return mapError("update article field", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update article field: %w", domain.ErrNotFound)
	}
	return nil
}

// List returns articles with the given status, newest first. An empty
// status returns everything.
func (s *ArticleStore) List(ctx context.Context, status string) ([]*domain.Article, error) {
	query := "SELECT" + articleColumns + " FROM articles"
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, mapError("list articles", err)
	}

	articles := make([]*domain.Article, 0, len(rows))
	for i := range rows {
		a, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}
