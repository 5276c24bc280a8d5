package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"content_sync/internal/ai"
	"content_sync/internal/assets"
	"content_sync/internal/config"
	"content_sync/internal/domain"
	"content_sync/internal/drive"
	"content_sync/internal/export"
	"content_sync/internal/publisher"
	"content_sync/internal/render"
	"content_sync/internal/scheduler"
	"content_sync/internal/service"
	"content_sync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	runStrategy := flag.String("run", "", "run one sync with the given strategy (incremental, month, full) and exit")
	targetMonth := flag.String("month", "", "target month folder name for the month strategy")
	sessions := flag.Int("sessions", 0, "print the N most recent sync sessions and exit")
	sessionLogs := flag.Int64("session-logs", 0, "print the log lines of a session and exit")
	doExport := flag.Bool("export", false, "export the article feed over FTP and exit")
	editArticle := flag.String("edit-article", "", "article id for a manual field edit")
	editField := flag.String("edit-field", "", "field name for a manual field edit")
	editValue := flag.String("edit-value", "", "new value for a manual field edit")
	editedBy := flag.String("edited-by", "cli", "who performs the manual field edit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := postgres.Connect(cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, cfg.Database.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	articleStore := postgres.NewArticleStore(db)
	aiFieldStore := postgres.NewAIFieldStore(db)
	fileCacheStore := postgres.NewFileCacheStore(db)
	sessionStore := postgres.NewSessionStore(db)
	promptStore := postgres.NewPromptStore(db)
	historyStore := postgres.NewEditHistoryStore(db)
	txManager := postgres.NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	imageCache := assets.NewImageCache(cfg.Sync.ImagesDir, logger)

	switch {
	case *sessions > 0:
		listSessions(ctx, sessionStore, *sessions)
		return
	case *sessionLogs > 0:
		printSessionLogs(ctx, sessionStore, *sessionLogs, logger)
		return
	case *editArticle != "":
		editor := service.NewEditor(articleStore, aiFieldStore, historyStore, txManager, logger)
		if err := editor.UpdateField(ctx, *editArticle, *editField, *editValue, *editedBy); err != nil {
			logger.Error("field edit failed", "article_id", *editArticle, "error", err)
			os.Exit(1)
		}
		return
	case *doExport:
		driveSvc, err := drive.NewService(ctx,
			cfg.Drive.ClientID, cfg.Drive.ClientSecret, cfg.Drive.RefreshToken)
		if err != nil {
			logger.Error("failed to create drive service", "error", err)
			os.Exit(1)
		}
		walker := drive.NewWalker(driveSvc, cfg.Drive.RootFolderID, logger)
		uploader := export.NewFTPUploader(export.FTPConfig{
			Host:     cfg.FTP.Host,
			Port:     cfg.FTP.Port,
			User:     cfg.FTP.User,
			Password: cfg.FTP.Password,
			BaseDir:  cfg.FTP.BaseDir,
			Timeout:  cfg.FTP.Timeout,
		}, logger)
		shipper := export.NewShipper(articleStore, walker, assets.NewResolver(walker, logger), uploader,
			cfg.Export.Status, cfg.Export.Concurrency, logger)
		if err := shipper.Ship(ctx); err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		return
	}

	driveSvc, err := drive.NewService(ctx,
		cfg.Drive.ClientID, cfg.Drive.ClientSecret, cfg.Drive.RefreshToken)
	if err != nil {
		logger.Error("failed to create drive service", "error", err)
		os.Exit(1)
	}

	walkerFactory := func() service.Walker {
		return drive.NewWalker(driveSvc, cfg.Drive.RootFolderID, logger)
	}

	resolver := assets.NewResolver(drive.NewWalker(driveSvc, cfg.Drive.RootFolderID, logger), logger)

	renderer := render.New(render.Config{
		BaseURL:        cfg.Renderer.BaseURL,
		Timeout:        cfg.Renderer.Timeout,
		MaxAttempts:    cfg.Renderer.Retry.MaxAttempts,
		InitialBackoff: cfg.Renderer.Retry.InitialBackoff,
		MaxBackoff:     cfg.Renderer.Retry.MaxBackoff,
	}, logger)

	if err := promptStore.EnsureDefaults(ctx, ai.DefaultPrompts); err != nil {
		logger.Error("failed to seed prompt templates", "error", err)
		os.Exit(1)
	}
	enricher := ai.NewEnricher(cfg.OpenAI.APIKey, cfg.OpenAI.Model, promptStore, logger)

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	reconciler := service.NewReconciler(
		renderer,
		resolver,
		imageCache,
		enricher,
		articleStore,
		aiFieldStore,
		fileCacheStore,
		sessionStore,
		txManager,
		rabbitMQ,
		service.EditorialDefaults{
			Author:     cfg.Editorial.Author,
			Sources:    cfg.Editorial.Sources,
			Categories: cfg.Editorial.Categories,
		},
		logger,
	)

	syncService := service.NewSyncService(
		walkerFactory,
		reconciler,
		sessionStore,
		articleStore,
		fileCacheStore,
		service.SyncConfig{
			IncrementalMonths: cfg.Sync.IncrementalMonths,
			FullMonths:        cfg.Sync.FullMonths,
		},
		logger,
	)

	if *runStrategy != "" {
		runOnce(ctx, syncService, *runStrategy, *targetMonth, logger)
		return
	}

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)

	logger.Info("starting content syncer",
		"root_folder", cfg.Drive.RootFolderID,
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, svc *service.SyncService, strategy, month string, logger *slog.Logger) {
	parsed, err := domain.ParseStrategy(strategy)
	if err != nil {
		logger.Error("invalid strategy", "strategy", strategy, "error", err)
		os.Exit(1)
	}

	result, err := svc.RunSync(ctx, parsed, month)
	if err != nil {
		logger.Error("sync run failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("strategy=%s processed=%d imported=%d skipped=%d errors=%d duration=%s\n",
		result.Strategy, result.Processed, result.Imported, result.Skipped,
		len(result.Errors), result.Duration)
	for _, fe := range result.Errors {
		fmt.Printf("  error %s: %s\n", fe.Path, fe.Message)
	}
}

func listSessions(ctx context.Context, store *postgres.SessionStore, n int) {
	sessions, err := store.Recent(ctx, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list sessions: %v\n", err)
		os.Exit(1)
	}
	for _, s := range sessions {
		month := ""
		if s.TargetMonth != nil {
			month = *s.TargetMonth
		}
		fmt.Printf("#%d %s %s %s processed=%d imported=%d skipped=%d\n",
			s.ID, s.Strategy, month, s.Status, s.Processed, s.Imported, s.Skipped)
	}
}

func printSessionLogs(ctx context.Context, store *postgres.SessionStore, id int64, logger *slog.Logger) {
	lines, err := store.Logs(ctx, id)
	if err != nil {
		logger.Error("load session logs", "session_id", id, "error", err)
		os.Exit(1)
	}
	for _, line := range lines {
		path := ""
		if line.FilePath != nil {
			path = " " + *line.FilePath
		}
		fmt.Printf("%s [%s]%s %s\n",
			line.LoggedAt.Format("2006-01-02 15:04:05"), line.Severity, path, line.Message)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
