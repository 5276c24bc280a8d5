package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_sync/internal/domain"
	"content_sync/internal/service/mocks"
)

type fakeProcessor struct {
	fn func(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error)
}

func (f *fakeProcessor) Process(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error) {
	return f.fn(ctx, walker, sessionID, file, origin)
}

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	walker    *mocks.MockWalker
	sessions  *mocks.MockSessionStore
	articles  *mocks.MockArticleStore
	fileCache *mocks.MockFileCacheStore
	processor *fakeProcessor

	service *SyncService
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.walker = mocks.NewMockWalker(s.ctrl)
	s.sessions = mocks.NewMockSessionStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.fileCache = mocks.NewMockFileCacheStore(s.ctrl)
	s.processor = &fakeProcessor{}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSyncService(
		func() Walker { return s.walker },
		s.processor,
		s.sessions,
		s.articles,
		s.fileCache,
		SyncConfig{IncrementalMonths: 2, FullMonths: 6},
		s.logger,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func monthDoc(month, article, name string, modified time.Time) domain.RemoteFile {
	return domain.RemoteFile{
		ID:           name + "-id",
		Name:         name,
		ModifiedTime: modified,
		MonthName:    month,
		ArticleName:  article,
	}
}

func (s *SyncServiceTestSuite) TestRunSync_IncrementalFirstRun() {
	ctx := context.Background()
	now := time.Now()

	july := domain.Folder{ID: "m-jul", Name: "JULY 2025"}
	june := domain.Folder{ID: "m-jun", Name: "JUNE 2025"}

	julyDocs := []domain.RemoteFile{
		monthDoc("JULY 2025", "First", "first.docx", now),
		monthDoc("JULY 2025", "Second", "second.docx", now),
		monthDoc("JULY 2025", "Third", "third.docx", now),
	}
	juneDocs := []domain.RemoteFile{
		monthDoc("JUNE 2025", "Older", "older.docx", now),
	}

	s.sessions.EXPECT().Start(ctx, domain.StrategyIncremental, nil).Return(int64(7), nil)
	s.sessions.EXPECT().LastCompleted(ctx, domain.StrategyIncremental).Return(nil, domain.ErrNotFound)
	s.walker.EXPECT().ListRecentMonthFolders(ctx, 2).Return([]domain.Folder{july, june}, nil)
	s.walker.EXPECT().DocumentsInMonth(ctx, july).Return(julyDocs, nil)
	s.walker.EXPECT().DocumentsInMonth(ctx, june).Return(juneDocs, nil)
	s.articles.EXPECT().GetByPath(ctx, gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrNotFound).Times(4)

	s.processor.fn = func(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error) {
		s.Equal(int64(7), sessionID)
		s.Equal("google_drive_incremental", origin)
		return OutcomeImported, nil
	}

	s.sessions.EXPECT().Complete(ctx, int64(7), 4, 4, 0, nil).Return(nil)

	result, err := s.service.RunSync(ctx, domain.StrategyIncremental, "")

	s.NoError(err)
	s.Equal(4, result.Processed)
	s.Equal(4, result.Imported)
	s.Equal(0, result.Skipped)
	s.Empty(result.Errors)
}

func (s *SyncServiceTestSuite) TestRunSync_IncrementalSkipsKnownAndStale() {
	ctx := context.Background()
	watermark := time.Now().Add(-24 * time.Hour)
	started := watermark.Add(-time.Hour)

	july := domain.Folder{ID: "m-jul", Name: "JULY 2025"}
	docs := []domain.RemoteFile{
		monthDoc("JULY 2025", "Fresh", "fresh.docx", watermark.Add(time.Hour)),
		monthDoc("JULY 2025", "Stale", "stale.docx", watermark.Add(-2*time.Hour)),
		// Modified while the previous run executed; still older than its
		// completion time, so filtered out.
		monthDoc("JULY 2025", "Midrun", "midrun.docx", watermark.Add(-30*time.Minute)),
		monthDoc("JULY 2025", "Known", "known.docx", watermark.Add(time.Hour)),
	}

	s.sessions.EXPECT().Start(ctx, domain.StrategyIncremental, nil).Return(int64(8), nil)
	s.sessions.EXPECT().LastCompleted(ctx, domain.StrategyIncremental).
		Return(&domain.Session{
			ID:          3,
			StartedAt:   started,
			CompletedAt: &watermark,
			Status:      domain.SessionCompleted,
		}, nil)
	s.walker.EXPECT().ListRecentMonthFolders(ctx, 2).Return([]domain.Folder{july}, nil)
	s.walker.EXPECT().DocumentsInMonth(ctx, july).Return(docs, nil)

	s.articles.EXPECT().GetByPath(ctx, "JULY 2025/Fresh", "fresh.docx").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().GetByPath(ctx, "JULY 2025/Known", "known.docx").Return(&domain.Article{ArticleID: "ART1_x"}, nil)

	var processed []string
	s.processor.fn = func(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error) {
		processed = append(processed, file.Name)
		return OutcomeImported, nil
	}

	s.sessions.EXPECT().Complete(ctx, int64(8), 1, 1, 0, nil).Return(nil)

	result, err := s.service.RunSync(ctx, domain.StrategyIncremental, "")

	s.NoError(err)
	s.Equal([]string{"fresh.docx"}, processed)
	s.Equal(1, result.Processed)
}

func (s *SyncServiceTestSuite) TestRunSync_MonthDuplicatesSkipped() {
	ctx := context.Background()
	now := time.Now()

	docs := []domain.RemoteFile{
		monthDoc("JULY 2025", "First", "first.docx", now),
		monthDoc("JULY 2025", "Second", "second.docx", now),
	}

	s.sessions.EXPECT().Start(ctx, domain.StrategyMonth, gomock.Any()).Return(int64(9), nil)
	s.walker.EXPECT().FindMonthID(ctx, "JULY 2025").Return("m-jul", nil)
	s.walker.EXPECT().DocumentsInMonth(ctx, domain.Folder{ID: "m-jul", Name: "JULY 2025"}).Return(docs, nil)

	s.processor.fn = func(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error) {
		s.Equal("google_drive_month", origin)
		return OutcomeSkipped, nil
	}

	s.sessions.EXPECT().Complete(ctx, int64(9), 2, 0, 2, nil).Return(nil)

	result, err := s.service.RunSync(ctx, domain.StrategyMonth, "JULY 2025")

	s.NoError(err)
	s.Equal(result.Processed, result.Skipped)
	s.Equal(0, result.Imported)
}

func (s *SyncServiceTestSuite) TestRunSync_MonthNotFound() {
	ctx := context.Background()

	s.sessions.EXPECT().Start(ctx, domain.StrategyMonth, gomock.Any()).Return(int64(10), nil)
	s.walker.EXPECT().FindMonthID(ctx, "MARCH 1999").Return("", nil)
	s.sessions.EXPECT().AppendLog(ctx, int64(10), domain.SeverityError, gomock.Any(), nil).Return(nil)
	s.sessions.EXPECT().Complete(ctx, int64(10), 0, 0, 0, gomock.Not(nil)).Return(nil)

	result, err := s.service.RunSync(ctx, domain.StrategyMonth, "MARCH 1999")

	s.Nil(result)
	s.ErrorIs(err, domain.ErrTargetNotFound)
}

func (s *SyncServiceTestSuite) TestRunSync_MonthRequiresTarget() {
	_, err := s.service.RunSync(context.Background(), domain.StrategyMonth, "")
	s.Error(err)
}

func (s *SyncServiceTestSuite) TestRunSync_FileErrorDoesNotAbortRun() {
	ctx := context.Background()
	now := time.Now()

	july := domain.Folder{ID: "m-jul", Name: "JULY 2025"}
	docs := []domain.RemoteFile{
		monthDoc("JULY 2025", "First", "first.docx", now),
		monthDoc("JULY 2025", "Broken", "broken.docx", now),
		monthDoc("JULY 2025", "Third", "third.docx", now),
	}

	s.sessions.EXPECT().Start(ctx, domain.StrategyFull, nil).Return(int64(11), nil)
	s.walker.EXPECT().ListRecentMonthFolders(ctx, 6).Return([]domain.Folder{july}, nil)
	s.walker.EXPECT().DocumentsInMonth(ctx, july).Return(docs, nil)

	s.processor.fn = func(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error) {
		if file.Name == "broken.docx" {
			return OutcomeSkipped, errors.New("render exploded")
		}
		return OutcomeImported, nil
	}

	s.fileCache.EXPECT().MarkProcessed(ctx, "broken.docx-id", false).Return(nil)
	s.sessions.EXPECT().AppendLog(ctx, int64(11), domain.SeverityError, gomock.Any(), gomock.Not(nil)).Return(nil)
	s.sessions.EXPECT().Complete(ctx, int64(11), 3, 2, 0, nil).Return(nil)

	result, err := s.service.RunSync(ctx, domain.StrategyFull, "")

	s.NoError(err)
	s.Equal(3, result.Processed)
	s.Equal(2, result.Imported)
	s.Len(result.Errors, 1)
	s.Equal("JULY 2025/Broken/broken.docx", result.Errors[0].Path)
}

func (s *SyncServiceTestSuite) TestRunSync_AuthExpiredAbortsRun() {
	ctx := context.Background()
	now := time.Now()

	july := domain.Folder{ID: "m-jul", Name: "JULY 2025"}
	docs := []domain.RemoteFile{
		monthDoc("JULY 2025", "First", "first.docx", now),
		monthDoc("JULY 2025", "Second", "second.docx", now),
		monthDoc("JULY 2025", "Third", "third.docx", now),
	}

	s.sessions.EXPECT().Start(ctx, domain.StrategyFull, nil).Return(int64(12), nil)
	s.walker.EXPECT().ListRecentMonthFolders(ctx, 6).Return([]domain.Folder{july}, nil)
	s.walker.EXPECT().DocumentsInMonth(ctx, july).Return(docs, nil)

	var seen []string
	s.processor.fn = func(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error) {
		seen = append(seen, file.Name)
		if file.Name == "second.docx" {
			return OutcomeSkipped, fmt.Errorf("download second.docx: %w", domain.ErrAuthExpired)
		}
		return OutcomeImported, nil
	}

	s.fileCache.EXPECT().MarkProcessed(ctx, "second.docx-id", false).Return(nil)
	s.sessions.EXPECT().AppendLog(ctx, int64(12), domain.SeverityError, gomock.Any(), gomock.Not(nil)).Return(nil)
	s.sessions.EXPECT().Complete(ctx, int64(12), 2, 1, 0, gomock.Not(nil)).Return(nil)

	result, err := s.service.RunSync(ctx, domain.StrategyFull, "")

	s.Nil(result)
	s.ErrorIs(err, domain.ErrAuthExpired)
	s.Equal([]string{"first.docx", "second.docx"}, seen)
}

func (s *SyncServiceTestSuite) TestRunSync_UnknownStrategy() {
	_, err := s.service.RunSync(context.Background(), domain.Strategy("weekly"), "")
	s.Error(err)
}
