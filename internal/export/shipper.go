package export

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"content_sync/internal/domain"
)

type ArticleLister interface {
	List(ctx context.Context, status string) ([]*domain.Article, error)
}

// HierarchyResolver re-enters the remote month/article hierarchy from an
// article's stored drive path and fetches file content.
type HierarchyResolver interface {
	FindMonthID(ctx context.Context, name string) (string, error)
	FindArticleID(ctx context.Context, monthID, name string) (string, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// ImagePicker selects the largest image among a folder's direct children.
// Images in nested folders are not exported.
type ImagePicker interface {
	BestImage(ctx context.Context, folderID string) (*domain.RemoteFile, error)
}

type Uploader interface {
	Upload(ctx context.Context, remotePath string, data []byte) error
}

// Shipper exports the article feed and each article's top-level image.
type Shipper struct {
	articles    ArticleLister
	hierarchy   HierarchyResolver
	picker      ImagePicker
	uploader    Uploader
	status      string
	concurrency int
	logger      *slog.Logger
}

func NewShipper(articles ArticleLister, hierarchy HierarchyResolver, picker ImagePicker, uploader Uploader, status string, concurrency int, logger *slog.Logger) *Shipper {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Shipper{
		articles:    articles,
		hierarchy:   hierarchy,
		picker:      picker,
		uploader:    uploader,
		status:      status,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Ship uploads feed.json and then each referenced article's image with
// bounded concurrency. An article whose remote folder or image can no
// longer be found is logged and skipped; remote or upload failures fail
// the export.
func (s *Shipper) Ship(ctx context.Context) error {
	articles, err := s.articles.List(ctx, s.status)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	data, err := BuildFeed(articles).Marshal()
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}
	if err := s.uploader.Upload(ctx, "feed.json", data); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	// Folder resolution stays sequential: the hierarchy caches are not
	// safe for concurrent use. Only the image fetch and upload fan out.
	for _, article := range articles {
		if article.ImageFilename == nil {
			continue
		}
		a := article

		folderID, err := s.resolveFolder(ctx, a)
		if err != nil {
			return err
		}
		if folderID == "" {
			continue
		}

		g.Go(func() error {
			image, err := s.picker.BestImage(gctx, folderID)
			if err != nil {
				return fmt.Errorf("pick image for %s: %w", a.ArticleID, err)
			}
			if image == nil {
				s.logger.Warn("no top-level image, skipping",
					"article_id", a.ArticleID, "path", a.DrivePath)
				return nil
			}

			img, err := s.hierarchy.Download(gctx, image.ID)
			if err != nil {
				return fmt.Errorf("download image %s: %w", image.Name, err)
			}

			remote := path.Join("images", a.ArticleID, image.Name)
			return s.uploader.Upload(gctx, remote, img)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("upload images: %w", err)
	}

	s.logger.Info("feed exported", "articles", len(articles))
	return nil
}

// resolveFolder maps an article's "MONTH/Article" drive path back onto its
// remote folder id. An empty id with nil error means the folder is gone
// and the article's image is skipped.
func (s *Shipper) resolveFolder(ctx context.Context, a *domain.Article) (string, error) {
	month, articleName, ok := strings.Cut(a.DrivePath, "/")
	if !ok {
		s.logger.Warn("unresolvable drive path, skipping image",
			"article_id", a.ArticleID, "path", a.DrivePath)
		return "", nil
	}

	monthID, err := s.hierarchy.FindMonthID(ctx, month)
	if err != nil {
		return "", fmt.Errorf("find month %s: %w", month, err)
	}
	if monthID == "" {
		s.logger.Warn("month folder gone, skipping image",
			"article_id", a.ArticleID, "month", month)
		return "", nil
	}

	folderID, err := s.hierarchy.FindArticleID(ctx, monthID, articleName)
	if err != nil {
		return "", fmt.Errorf("find article folder %s: %w", a.DrivePath, err)
	}
	if folderID == "" {
		s.logger.Warn("article folder gone, skipping image",
			"article_id", a.ArticleID, "path", a.DrivePath)
	}
	return folderID, nil
}
