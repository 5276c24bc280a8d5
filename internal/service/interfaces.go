package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"content_sync/internal/domain"
)

// Walker is a run-scoped view of the remote drive hierarchy. Its folder-name
// lookups are cached, so a fresh Walker must be created for every sync run.
type Walker interface {
	ListMonthFolders(ctx context.Context) ([]domain.Folder, error)
	ListRecentMonthFolders(ctx context.Context, limit int) ([]domain.Folder, error)
	ListArticleFolders(ctx context.Context, monthID string) ([]domain.Folder, error)
	ListSubfolders(ctx context.Context, folderID string) ([]domain.Folder, error)
	ListDocuments(ctx context.Context, folderID string) ([]domain.RemoteFile, error)
	ListImages(ctx context.Context, folderID string) ([]domain.RemoteFile, error)
	DocumentsInMonth(ctx context.Context, month domain.Folder) ([]domain.RemoteFile, error)
	FindMonthID(ctx context.Context, name string) (string, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// WalkerFactory builds the Walker for one run.
type WalkerFactory func() Walker

type AssetResolver interface {
	BestImage(ctx context.Context, folderID string) (*domain.RemoteFile, error)
	BestImageDeep(ctx context.Context, folderID string) (*domain.RemoteFile, error)
}

type ImageCache interface {
	Store(drivePath, name string, data []byte) (string, error)
}

type Renderer interface {
	Render(ctx context.Context, docx []byte) (string, error)
}

type Enricher interface {
	Enrich(ctx context.Context, article *domain.Article)
}

type ArticleStore interface {
	Insert(ctx context.Context, article *domain.Article) error
	GetByArticleID(ctx context.Context, articleID string) (*domain.Article, error)
	GetByTitle(ctx context.Context, title string) (*domain.Article, error)
	GetByPath(ctx context.Context, drivePath, originalFilename string) (*domain.Article, error)
	SetImage(ctx context.Context, articleID, imageFilename string) error
	UpdateField(ctx context.Context, articleID, fieldName, value string) error
	List(ctx context.Context, status string) ([]*domain.Article, error)
}

type AIFieldStore interface {
	InsertMarkers(ctx context.Context, markers []domain.AIFieldMarker) error
	MarkManual(ctx context.Context, articleID, fieldName string) error
}

type FileCacheStore interface {
	Upsert(ctx context.Context, file domain.RemoteFile) error
	MarkProcessed(ctx context.Context, fileID string, processed bool) error
	Get(ctx context.Context, fileID string) (*domain.FileCacheEntry, error)
}

type SessionStore interface {
	Start(ctx context.Context, strategy domain.Strategy, targetMonth *string) (int64, error)
	Complete(ctx context.Context, id int64, processed, imported, skipped int, errMsg *string) error
	Get(ctx context.Context, id int64) (*domain.Session, error)
	Recent(ctx context.Context, n int) ([]domain.Session, error)
	LastCompleted(ctx context.Context, strategy domain.Strategy) (*domain.Session, error)
	AppendLog(ctx context.Context, sessionID int64, severity, message string, filePath *string) error
	Logs(ctx context.Context, sessionID int64) ([]domain.LogLine, error)
}

type EditHistoryStore interface {
	Append(ctx context.Context, entry domain.EditEntry) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article, action string) error
	Close() error
}
