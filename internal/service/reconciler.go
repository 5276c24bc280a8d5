package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"content_sync/internal/classify"
	"content_sync/internal/domain"
)

// Outcome classifies what Process did with one file.
type Outcome int

const (
	OutcomeImported Outcome = iota
	OutcomeSkipped
)

// EditorialDefaults are the fixed values stamped onto every imported
// article.
type EditorialDefaults struct {
	Author     string
	Sources    []string
	Categories []string
}

// Reconciler turns one remote document into a stored article, or decides it
// is already known. It never mutates existing article text; the only write
// it performs on an existing article is an image backfill.
type Reconciler struct {
	renderer  Renderer
	resolver  AssetResolver
	images    ImageCache
	enricher  Enricher
	articles  ArticleStore
	aiFields  AIFieldStore
	fileCache FileCacheStore
	sessions  SessionStore
	tx        TransactionManager
	publisher Publisher
	defaults  EditorialDefaults
	logger    *slog.Logger
}

func NewReconciler(
	renderer Renderer,
	resolver AssetResolver,
	images ImageCache,
	enricher Enricher,
	articles ArticleStore,
	aiFields AIFieldStore,
	fileCache FileCacheStore,
	sessions SessionStore,
	tx TransactionManager,
	publisher Publisher,
	defaults EditorialDefaults,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		renderer:  renderer,
		resolver:  resolver,
		images:    images,
		enricher:  enricher,
		articles:  articles,
		aiFields:  aiFields,
		fileCache: fileCache,
		sessions:  sessions,
		tx:        tx,
		publisher: publisher,
		defaults:  defaults,
		logger:    logger,
	}
}

// Process imports a single remote document. The walker belongs to the
// calling run. Any returned error leaves the file marked unprocessed so a
// later run retries it; the caller owns that bookkeeping.
func (r *Reconciler) Process(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error) {
	if skip, err := r.alreadyProcessed(ctx, file); err != nil {
		return OutcomeSkipped, err
	} else if skip {
		r.logLine(ctx, sessionID, domain.SeverityInfo, "already processed, skipping", file)
		return OutcomeSkipped, nil
	}

	if err := r.fileCache.Upsert(ctx, file); err != nil {
		return OutcomeSkipped, fmt.Errorf("cache file metadata: %w", err)
	}

	doc, err := r.classifyDocument(ctx, walker, file)
	if err != nil {
		return OutcomeSkipped, err
	}

	match, err := r.findExisting(ctx, file, doc.Title)
	if err != nil {
		return OutcomeSkipped, err
	}

	switch match.Kind {
	case domain.MatchedByTitle:
		if err := r.backfillImage(ctx, walker, sessionID, file, match.Article, "title"); err != nil {
			return OutcomeSkipped, err
		}
		return OutcomeSkipped, r.fileCache.MarkProcessed(ctx, file.ID, true)

	case domain.MatchedByPath:
		if err := r.backfillImage(ctx, walker, sessionID, file, match.Article, "path"); err != nil {
			return OutcomeSkipped, err
		}
		return OutcomeSkipped, r.fileCache.MarkProcessed(ctx, file.ID, true)
	}

	article := &domain.Article{
		ArticleID:        domain.NewArticleID(),
		Title:            doc.Title,
		Lead:             doc.Lead,
		Body:             doc.Body,
		Author:           r.defaults.Author,
		Sources:          r.defaults.Sources,
		Categories:       r.defaults.Categories,
		Status:           domain.StatusDraft,
		ImportedFrom:     origin,
		DrivePath:        file.Path(),
		OriginalFilename: file.Name,
	}

	r.attachImage(ctx, walker, sessionID, file, article)
	r.enricher.Enrich(ctx, article)

	err = r.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := r.articles.Insert(txCtx, article); err != nil {
			return err
		}
		return r.aiFields.InsertMarkers(txCtx, domain.ImportMarkers(article.ArticleID))
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			r.logLine(ctx, sessionID, domain.SeverityInfo, "duplicate key on insert, skipping", file)
			return OutcomeSkipped, r.fileCache.MarkProcessed(ctx, file.ID, true)
		}
		return OutcomeSkipped, fmt.Errorf("store article: %w", err)
	}

	if err := r.fileCache.MarkProcessed(ctx, file.ID, true); err != nil {
		return OutcomeImported, err
	}

	if err := r.publisher.Publish(ctx, article, domain.ActionImported); err != nil {
		r.logger.Warn("publish article event failed",
			"article_id", article.ArticleID, "error", err)
	}

	r.logLine(ctx, sessionID, domain.SeverityInfo,
		fmt.Sprintf("imported as %s", article.ArticleID), file)
	return OutcomeImported, nil
}

// alreadyProcessed reports whether the cache already marks this exact
// version of the file as imported.
func (r *Reconciler) alreadyProcessed(ctx context.Context, file domain.RemoteFile) (bool, error) {
	entry, err := r.fileCache.Get(ctx, file.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return entry.Processed && !file.ModifiedTime.After(entry.ModifiedTime), nil
}

func (r *Reconciler) classifyDocument(ctx context.Context, walker Walker, file domain.RemoteFile) (classify.Document, error) {
	data, err := walker.Download(ctx, file.ID)
	if err != nil {
		return classify.Document{}, fmt.Errorf("download %s: %w", file.FullPath(), err)
	}

	html, err := r.renderer.Render(ctx, data)
	if err != nil {
		return classify.Document{}, fmt.Errorf("render %s: %w", file.FullPath(), err)
	}

	doc, err := classify.Classify(html, file.Name)
	if err != nil {
		return classify.Document{}, fmt.Errorf("classify %s: %w", file.FullPath(), err)
	}
	return doc, nil
}

// findExisting runs the duplicate-lookup chain: exact title first, then
// (path, filename).
func (r *Reconciler) findExisting(ctx context.Context, file domain.RemoteFile, title string) (domain.ArticleMatch, error) {
	existing, err := r.articles.GetByTitle(ctx, title)
	if err == nil {
		return domain.ArticleMatch{Kind: domain.MatchedByTitle, Article: existing}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.ArticleMatch{}, fmt.Errorf("lookup by title: %w", err)
	}

	existing, err = r.articles.GetByPath(ctx, file.Path(), file.Name)
	if err == nil {
		return domain.ArticleMatch{Kind: domain.MatchedByPath, Article: existing}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.ArticleMatch{}, fmt.Errorf("lookup by path: %w", err)
	}

	return domain.ArticleMatch{Kind: domain.NoMatch}, nil
}

// attachImage resolves the best image for the article folder, downloads it
// into the local cache and records it on the article. Image problems never
// fail the import.
func (r *Reconciler) attachImage(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, article *domain.Article) {
	image := r.resolveImage(ctx, file)
	if image == nil {
		return
	}

	data, err := walker.Download(ctx, image.ID)
	if err != nil {
		r.logger.Warn("image download failed", "file", image.Name, "error", err)
		r.logLine(ctx, sessionID, domain.SeverityWarn,
			fmt.Sprintf("image %s could not be downloaded", image.Name), file)
		return
	}

	if _, err := r.images.Store(file.Path(), image.Name, data); err != nil {
		r.logger.Warn("image cache write failed", "file", image.Name, "error", err)
		return
	}

	article.ImageFilename = &image.Name
	article.PhotoAuthor = domain.PhotoCredit(image.Name)
}

// resolveImage tries the shallow tier first and descends into subfolders
// only when the article folder itself has no acceptable image.
func (r *Reconciler) resolveImage(ctx context.Context, file domain.RemoteFile) *domain.RemoteFile {
	image, err := r.resolver.BestImage(ctx, file.ArticleFolderID)
	if err != nil {
		r.logger.Warn("image listing failed", "path", file.Path(), "error", err)
		return nil
	}
	if image != nil {
		return image
	}

	image, err = r.resolver.BestImageDeep(ctx, file.ArticleFolderID)
	if err != nil {
		r.logger.Warn("deep image listing failed", "path", file.Path(), "error", err)
		return nil
	}
	return image
}

// backfillImage attaches an image to a matched duplicate article that has
// none. how names the lookup that matched, for the session log.
func (r *Reconciler) backfillImage(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, existing *domain.Article, how string) error {
	if existing.ImageFilename != nil {
		r.logLine(ctx, sessionID, domain.SeverityInfo,
			fmt.Sprintf("duplicate of %s by %s, skipping", existing.ArticleID, how), file)
		return nil
	}

	image := r.resolveImage(ctx, file)
	if image == nil {
		r.logLine(ctx, sessionID, domain.SeverityInfo,
			fmt.Sprintf("duplicate of %s by %s, no image to backfill", existing.ArticleID, how), file)
		return nil
	}

	data, err := walker.Download(ctx, image.ID)
	if err != nil {
		r.logger.Warn("backfill image download failed", "file", image.Name, "error", err)
		return nil
	}
	if _, err := r.images.Store(file.Path(), image.Name, data); err != nil {
		r.logger.Warn("backfill image cache write failed", "file", image.Name, "error", err)
		return nil
	}

	if err := r.articles.SetImage(ctx, existing.ArticleID, image.Name); err != nil {
		return fmt.Errorf("backfill image: %w", err)
	}

	if err := r.publisher.Publish(ctx, existing, domain.ActionUpdated); err != nil {
		r.logger.Warn("publish article event failed",
			"article_id", existing.ArticleID, "error", err)
	}

	r.logLine(ctx, sessionID, domain.SeverityInfo,
		fmt.Sprintf("backfilled image %s onto %s", image.Name, existing.ArticleID), file)
	return nil
}

func (r *Reconciler) logLine(ctx context.Context, sessionID int64, severity, message string, file domain.RemoteFile) {
	path := file.FullPath()
	if err := r.sessions.AppendLog(ctx, sessionID, severity, message, &path); err != nil {
		r.logger.Warn("append session log failed", "session_id", sessionID, "error", err)
	}
}
