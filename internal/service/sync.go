package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"content_sync/internal/domain"
)

// FileProcessor decides what to do with one discovered file. Implemented by
// Reconciler; an interface so the orchestrator can be tested without it.
type FileProcessor interface {
	Process(ctx context.Context, walker Walker, sessionID int64, file domain.RemoteFile, origin string) (Outcome, error)
}

// SyncConfig bounds how far back the walking strategies look.
type SyncConfig struct {
	IncrementalMonths int
	FullMonths        int
}

// SyncService orchestrates synchronization runs. Each run gets its own
// Walker so remote folder lookups are cached per run and never go stale
// across runs.
type SyncService struct {
	walkers   WalkerFactory
	processor FileProcessor
	sessions  SessionStore
	articles  ArticleStore
	fileCache FileCacheStore
	cfg       SyncConfig
	logger    *slog.Logger
}

func NewSyncService(
	walkers WalkerFactory,
	processor FileProcessor,
	sessions SessionStore,
	articles ArticleStore,
	fileCache FileCacheStore,
	cfg SyncConfig,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		walkers:   walkers,
		processor: processor,
		sessions:  sessions,
		articles:  articles,
		fileCache: fileCache,
		cfg:       cfg,
		logger:    logger,
	}
}

// RunSync executes one synchronization run. Discovery errors fail the
// session; per-file errors are recorded and the run carries on. The
// returned Result always has its counts populated.
func (s *SyncService) RunSync(ctx context.Context, strategy domain.Strategy, targetMonth string) (*domain.Result, error) {
	if _, err := domain.ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if strategy == domain.StrategyMonth && targetMonth == "" {
		return nil, fmt.Errorf("month strategy requires a target month")
	}

	walker := s.walkers()

	var target *string
	if targetMonth != "" {
		target = &targetMonth
	}

	sessionID, err := s.sessions.Start(ctx, strategy, target)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	started := time.Now()
	s.logger.Info("sync run started",
		"session_id", sessionID, "strategy", strategy, "target_month", targetMonth)

	files, err := s.gatherFiles(ctx, walker, strategy, targetMonth)
	if err != nil {
		msg := err.Error()
		s.appendLog(ctx, sessionID, domain.SeverityError, msg, nil)
		if cerr := s.sessions.Complete(ctx, sessionID, 0, 0, 0, &msg); cerr != nil {
			s.logger.Error("complete session failed", "session_id", sessionID, "error", cerr)
		}
		return nil, fmt.Errorf("discover files: %w", err)
	}

	result := &domain.Result{Strategy: strategy, TargetMonth: targetMonth}
	origin := strategy.ImportOrigin()

	for _, file := range files {
		result.Processed++

		outcome, err := s.processor.Process(ctx, walker, sessionID, file, origin)
		if err != nil {
			s.logger.Error("file processing failed",
				"session_id", sessionID, "file", file.FullPath(), "error", err)
			if merr := s.fileCache.MarkProcessed(ctx, file.ID, false); merr != nil {
				s.logger.Error("reset processed flag failed", "file_id", file.ID, "error", merr)
			}
			path := file.FullPath()
			s.appendLog(ctx, sessionID, domain.SeverityError, err.Error(), &path)
			result.Errors = append(result.Errors, domain.FileError{Path: path, Message: err.Error()})

			// Expired credentials poison every remaining file; stop the
			// run and surface the re-authentication signal.
			if errors.Is(err, domain.ErrAuthExpired) {
				msg := fmt.Sprintf("needs re-authentication: %v", err)
				if cerr := s.sessions.Complete(ctx, sessionID,
					result.Processed, result.Imported, result.Skipped, &msg); cerr != nil {
					s.logger.Error("complete session failed", "session_id", sessionID, "error", cerr)
				}
				return nil, fmt.Errorf("run aborted: %w", err)
			}
			continue
		}

		switch outcome {
		case OutcomeImported:
			result.Imported++
		case OutcomeSkipped:
			result.Skipped++
		}
	}

	if err := s.sessions.Complete(ctx, sessionID,
		result.Processed, result.Imported, result.Skipped, nil); err != nil {
		s.logger.Error("complete session failed", "session_id", sessionID, "error", err)
	}

	result.Duration = time.Since(started)
	s.logger.Info("sync run finished",
		"session_id", sessionID,
		"processed", result.Processed,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)
	return result, nil
}

func (s *SyncService) gatherFiles(ctx context.Context, walker Walker, strategy domain.Strategy, targetMonth string) ([]domain.RemoteFile, error) {
	switch strategy {
	case domain.StrategyIncremental:
		return s.gatherIncremental(ctx, walker)
	case domain.StrategyMonth:
		return s.gatherMonth(ctx, walker, targetMonth)
	case domain.StrategyFull:
		return s.gatherRecent(ctx, walker, s.cfg.FullMonths, time.Time{})
	}
	return nil, fmt.Errorf("unknown sync strategy %q", strategy)
}

// gatherIncremental walks the most recent months and keeps only files
// modified since the last completed incremental run that are not already
// imported. The watermark is that run's completion time.
func (s *SyncService) gatherIncremental(ctx context.Context, walker Walker) ([]domain.RemoteFile, error) {
	var since time.Time
	last, err := s.sessions.LastCompleted(ctx, domain.StrategyIncremental)
	switch {
	case err == nil:
		if last.CompletedAt != nil {
			since = *last.CompletedAt
		}
	case errors.Is(err, domain.ErrNotFound):
		// First incremental run, no watermark.
	default:
		return nil, fmt.Errorf("load watermark: %w", err)
	}

	files, err := s.gatherRecent(ctx, walker, s.cfg.IncrementalMonths, since)
	if err != nil {
		return nil, err
	}

	fresh := make([]domain.RemoteFile, 0, len(files))
	for _, file := range files {
		_, err := s.articles.GetByPath(ctx, file.Path(), file.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			// Keep the file on lookup failure; the reconciler resolves
			// duplicates anyway.
			s.logger.Warn("prefilter lookup failed", "file", file.FullPath(), "error", err)
		}
		fresh = append(fresh, file)
	}
	return fresh, nil
}

func (s *SyncService) gatherRecent(ctx context.Context, walker Walker, monthLimit int, since time.Time) ([]domain.RemoteFile, error) {
	months, err := walker.ListRecentMonthFolders(ctx, monthLimit)
	if err != nil {
		return nil, fmt.Errorf("list month folders: %w", err)
	}

	var files []domain.RemoteFile
	for _, month := range months {
		docs, err := walker.DocumentsInMonth(ctx, month)
		if err != nil {
			return nil, fmt.Errorf("walk month %s: %w", month.Name, err)
		}
		for _, doc := range docs {
			if !since.IsZero() && !doc.ModifiedTime.After(since) {
				continue
			}
			files = append(files, doc)
		}
	}
	return files, nil
}

func (s *SyncService) gatherMonth(ctx context.Context, walker Walker, targetMonth string) ([]domain.RemoteFile, error) {
	monthID, err := walker.FindMonthID(ctx, targetMonth)
	if err != nil {
		return nil, fmt.Errorf("find month %s: %w", targetMonth, err)
	}
	if monthID == "" {
		return nil, fmt.Errorf("month %q: %w", targetMonth, domain.ErrTargetNotFound)
	}

	return walker.DocumentsInMonth(ctx, domain.Folder{ID: monthID, Name: targetMonth})
}

// RecentSessions lists the latest n sessions for operator inspection.
func (s *SyncService) RecentSessions(ctx context.Context, n int) ([]domain.Session, error) {
	return s.sessions.Recent(ctx, n)
}

// SessionLogs returns a session's audit lines in chronological order.
func (s *SyncService) SessionLogs(ctx context.Context, sessionID int64) ([]domain.LogLine, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.sessions.Logs(ctx, sessionID)
}

func (s *SyncService) appendLog(ctx context.Context, sessionID int64, severity, message string, path *string) {
	if err := s.sessions.AppendLog(ctx, sessionID, severity, message, path); err != nil {
		s.logger.Warn("append session log failed", "session_id", sessionID, "error", err)
	}
}
