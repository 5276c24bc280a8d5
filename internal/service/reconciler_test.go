package service

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_sync/internal/domain"
	"content_sync/internal/service/mocks"
)

type ReconcilerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	walker    *mocks.MockWalker
	renderer  *mocks.MockRenderer
	resolver  *mocks.MockAssetResolver
	images    *mocks.MockImageCache
	enricher  *mocks.MockEnricher
	articles  *mocks.MockArticleStore
	aiFields  *mocks.MockAIFieldStore
	fileCache *mocks.MockFileCacheStore
	sessions  *mocks.MockSessionStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	reconciler *Reconciler
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.walker = mocks.NewMockWalker(s.ctrl)
	s.renderer = mocks.NewMockRenderer(s.ctrl)
	s.resolver = mocks.NewMockAssetResolver(s.ctrl)
	s.images = mocks.NewMockImageCache(s.ctrl)
	s.enricher = mocks.NewMockEnricher(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.aiFields = mocks.NewMockAIFieldStore(s.ctrl)
	s.fileCache = mocks.NewMockFileCacheStore(s.ctrl)
	s.sessions = mocks.NewMockSessionStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.sessions.EXPECT().AppendLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.reconciler = NewReconciler(
		s.renderer,
		s.resolver,
		s.images,
		s.enricher,
		s.articles,
		s.aiFields,
		s.fileCache,
		s.sessions,
		s.txManager,
		s.publisher,
		EditorialDefaults{
			Author:     "Newsroom",
			Sources:    []string{"newsroom"},
			Categories: []string{"General"},
		},
		logger,
	)
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func testFile() domain.RemoteFile {
	return domain.RemoteFile{
		ID:              "doc-1",
		Name:            "storm_report.docx",
		ModifiedTime:    time.Now(),
		MonthName:       "JULY 2025",
		ArticleName:     "Storm Report",
		ArticleFolderID: "folder-1",
	}
}

const testHTML = `<html><body>
<h1>Storm hits the coast</h1>
<p>A powerful storm battered the coastline on Tuesday, leaving thousands of households without electricity and forcing dozens of families to evacuate.</p>
<p>Emergency crews worked through the night.</p>
</body></html>`

func (s *ReconcilerTestSuite) expectClassification(file domain.RemoteFile) {
	s.fileCache.EXPECT().Get(gomock.Any(), file.ID).Return(nil, domain.ErrNotFound)
	s.fileCache.EXPECT().Upsert(gomock.Any(), file).Return(nil)
	s.walker.EXPECT().Download(gomock.Any(), file.ID).Return([]byte("docx-bytes"), nil)
	s.renderer.EXPECT().Render(gomock.Any(), []byte("docx-bytes")).Return(testHTML, nil)
}

func (s *ReconcilerTestSuite) expectTransaction() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *ReconcilerTestSuite) TestProcess_ImportsNewDocument() {
	ctx := context.Background()
	file := testFile()

	s.expectClassification(file)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().GetByPath(ctx, "JULY 2025/Storm Report", "storm_report.docx").Return(nil, domain.ErrNotFound)

	image := domain.RemoteFile{ID: "img-1", Name: "coast_flood_Pexels.jpg", Size: 2048}
	s.resolver.EXPECT().BestImage(ctx, "folder-1").Return(&image, nil)
	s.walker.EXPECT().Download(ctx, "img-1").Return([]byte("jpeg"), nil)
	s.images.EXPECT().Store("JULY 2025/Storm Report", "coast_flood_Pexels.jpg", []byte("jpeg")).
		Return("/images/JULY 2025/Storm Report/coast_flood_Pexels.jpg", nil)

	s.enricher.EXPECT().Enrich(ctx, gomock.Any())

	s.expectTransaction()

	var inserted *domain.Article
	s.articles.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, a *domain.Article) error {
			inserted = a
			return nil
		},
	)
	s.aiFields.EXPECT().InsertMarkers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, markers []domain.AIFieldMarker) error {
			s.Len(markers, 8)
			return nil
		},
	)
	s.fileCache.EXPECT().MarkProcessed(ctx, "doc-1", true).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), domain.ActionImported).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_month")

	s.NoError(err)
	s.Equal(OutcomeImported, outcome)
	s.Require().NotNil(inserted)
	s.True(strings.HasPrefix(inserted.ArticleID, "ART"))
	s.Equal("Storm hits the coast", inserted.Title)
	s.Contains(inserted.Lead, "powerful storm")
	s.Equal("Newsroom", inserted.Author)
	s.Equal(domain.StatusDraft, inserted.Status)
	s.Equal("google_drive_month", inserted.ImportedFrom)
	s.Equal("JULY 2025/Storm Report", inserted.DrivePath)
	s.Require().NotNil(inserted.ImageFilename)
	s.Equal("coast_flood_Pexels.jpg", *inserted.ImageFilename)
	s.Require().NotNil(inserted.PhotoAuthor)
	s.Equal("Pexels", *inserted.PhotoAuthor)
}

func (s *ReconcilerTestSuite) TestProcess_SkipsAlreadyProcessed() {
	ctx := context.Background()
	file := testFile()

	s.fileCache.EXPECT().Get(ctx, file.ID).Return(&domain.FileCacheEntry{
		FileID:       file.ID,
		ModifiedTime: file.ModifiedTime,
		Processed:    true,
	}, nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_incremental")

	s.NoError(err)
	s.Equal(OutcomeSkipped, outcome)
}

func (s *ReconcilerTestSuite) TestProcess_ReprocessesModifiedFile() {
	ctx := context.Background()
	file := testFile()

	s.fileCache.EXPECT().Get(ctx, file.ID).Return(&domain.FileCacheEntry{
		FileID:       file.ID,
		ModifiedTime: file.ModifiedTime.Add(-time.Hour),
		Processed:    true,
	}, nil)
	img := "existing.jpg"
	s.fileCache.EXPECT().Upsert(ctx, file).Return(nil)
	s.walker.EXPECT().Download(ctx, file.ID).Return([]byte("docx-bytes"), nil)
	s.renderer.EXPECT().Render(ctx, []byte("docx-bytes")).Return(testHTML, nil)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").
		Return(&domain.Article{ArticleID: "ART1_a", ImageFilename: &img}, nil)
	s.fileCache.EXPECT().MarkProcessed(ctx, file.ID, true).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_incremental")

	s.NoError(err)
	s.Equal(OutcomeSkipped, outcome)
}

func (s *ReconcilerTestSuite) TestProcess_DuplicateByTitleKeepsExistingImage() {
	ctx := context.Background()
	file := testFile()

	img := "already.jpg"
	s.expectClassification(file)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").
		Return(&domain.Article{ArticleID: "ART1_a", Title: "Storm hits the coast", ImageFilename: &img}, nil)
	s.fileCache.EXPECT().MarkProcessed(ctx, "doc-1", true).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_month")

	s.NoError(err)
	s.Equal(OutcomeSkipped, outcome)
}

func (s *ReconcilerTestSuite) TestProcess_DuplicateByTitleBackfillsImage() {
	ctx := context.Background()
	file := testFile()

	existing := &domain.Article{ArticleID: "ART1_a", Title: "Storm hits the coast"}

	s.expectClassification(file)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").Return(existing, nil)

	image := domain.RemoteFile{ID: "img-1", Name: "coast_AFP.jpg", Size: 1024}
	s.resolver.EXPECT().BestImage(ctx, "folder-1").Return(&image, nil)
	s.walker.EXPECT().Download(ctx, "img-1").Return([]byte("jpeg"), nil)
	s.images.EXPECT().Store("JULY 2025/Storm Report", "coast_AFP.jpg", []byte("jpeg")).Return("path", nil)
	s.articles.EXPECT().SetImage(ctx, "ART1_a", "coast_AFP.jpg").Return(nil)
	s.publisher.EXPECT().Publish(ctx, existing, domain.ActionUpdated).Return(nil)
	s.fileCache.EXPECT().MarkProcessed(ctx, "doc-1", true).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_month")

	s.NoError(err)
	s.Equal(OutcomeSkipped, outcome)
}

func (s *ReconcilerTestSuite) TestProcess_DuplicateByPathBackfillsImage() {
	ctx := context.Background()
	file := testFile()

	existing := &domain.Article{ArticleID: "ART1_b", Title: "Different title"}

	s.expectClassification(file)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().GetByPath(ctx, "JULY 2025/Storm Report", "storm_report.docx").Return(existing, nil)

	image := domain.RemoteFile{ID: "img-1", Name: "coast_AFP.jpg", Size: 1024}
	s.resolver.EXPECT().BestImage(ctx, "folder-1").Return(&image, nil)
	s.walker.EXPECT().Download(ctx, "img-1").Return([]byte("jpeg"), nil)
	s.images.EXPECT().Store("JULY 2025/Storm Report", "coast_AFP.jpg", []byte("jpeg")).Return("path", nil)
	s.articles.EXPECT().SetImage(ctx, "ART1_b", "coast_AFP.jpg").Return(nil)
	s.publisher.EXPECT().Publish(ctx, existing, domain.ActionUpdated).Return(nil)
	s.fileCache.EXPECT().MarkProcessed(ctx, "doc-1", true).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_month")

	s.NoError(err)
	s.Equal(OutcomeSkipped, outcome)
}

func (s *ReconcilerTestSuite) TestProcess_DuplicateByPathKeepsExistingImage() {
	ctx := context.Background()
	file := testFile()

	img := "already.jpg"
	existing := &domain.Article{ArticleID: "ART1_c", ImageFilename: &img}

	s.expectClassification(file)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().GetByPath(ctx, "JULY 2025/Storm Report", "storm_report.docx").Return(existing, nil)
	s.fileCache.EXPECT().MarkProcessed(ctx, "doc-1", true).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_month")

	s.NoError(err)
	s.Equal(OutcomeSkipped, outcome)
}

func (s *ReconcilerTestSuite) TestProcess_DuplicateKeyOnInsert() {
	ctx := context.Background()
	file := testFile()

	s.expectClassification(file)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().GetByPath(ctx, "JULY 2025/Storm Report", "storm_report.docx").Return(nil, domain.ErrNotFound)
	s.resolver.EXPECT().BestImage(ctx, "folder-1").Return(nil, nil)
	s.resolver.EXPECT().BestImageDeep(ctx, "folder-1").Return(nil, nil)
	s.enricher.EXPECT().Enrich(ctx, gomock.Any())

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateKey)
	s.fileCache.EXPECT().MarkProcessed(ctx, "doc-1", true).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_month")

	s.NoError(err)
	s.Equal(OutcomeSkipped, outcome)
}

func (s *ReconcilerTestSuite) TestProcess_RenderFailure() {
	ctx := context.Background()
	file := testFile()

	s.fileCache.EXPECT().Get(ctx, file.ID).Return(nil, domain.ErrNotFound)
	s.fileCache.EXPECT().Upsert(ctx, file).Return(nil)
	s.walker.EXPECT().Download(ctx, file.ID).Return([]byte("docx-bytes"), nil)
	s.renderer.EXPECT().Render(ctx, []byte("docx-bytes")).Return("", context.DeadlineExceeded)

	_, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_month")

	s.Error(err)
}

func (s *ReconcilerTestSuite) TestProcess_ImageFailureDoesNotFailImport() {
	ctx := context.Background()
	file := testFile()

	s.expectClassification(file)
	s.articles.EXPECT().GetByTitle(ctx, "Storm hits the coast").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().GetByPath(ctx, "JULY 2025/Storm Report", "storm_report.docx").Return(nil, domain.ErrNotFound)

	image := domain.RemoteFile{ID: "img-1", Name: "coast.jpg", Size: 1024}
	s.resolver.EXPECT().BestImage(ctx, "folder-1").Return(&image, nil)
	s.walker.EXPECT().Download(ctx, "img-1").Return(nil, domain.ErrNotFound)

	s.enricher.EXPECT().Enrich(ctx, gomock.Any())
	s.expectTransaction()

	var inserted *domain.Article
	s.articles.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, a *domain.Article) error {
			inserted = a
			return nil
		},
	)
	s.aiFields.EXPECT().InsertMarkers(gomock.Any(), gomock.Any()).Return(nil)
	s.fileCache.EXPECT().MarkProcessed(ctx, "doc-1", true).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), domain.ActionImported).Return(nil)

	outcome, err := s.reconciler.Process(ctx, s.walker, 1, file, "google_drive_full")

	s.NoError(err)
	s.Equal(OutcomeImported, outcome)
	s.Nil(inserted.ImageFilename)
}
