package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/scurve/internal/cli"
	"github.com/alexanderramin/scurve/internal/config"
	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/repository"
	"github.com/alexanderramin/scurve/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger, err := cfg.NewLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	cat, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}
	catalogSource := "built-in"
	if cfg.CatalogPath != "" {
		catalogSource = cfg.CatalogPath
	}

	// Open database
	database, err := db.OpenDB(dbPath, db.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("catalog loaded", zap.String("source", catalogSource))

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewZapUseCaseObserver(logger)
	}

	// Wire services
	curveSvc := service.NewCurveService(projectRepo, taskRepo, snapshotRepo, cat,
		service.WithRedistribution(cfg.Redistribute),
		service.WithConcurrency(cfg.Concurrency),
		service.WithLogger(logger),
		service.WithObserver(observer),
		service.WithUnitOfWork(uow),
	)
	snapshotSvc := service.NewSnapshotService(snapshotRepo, uow, observer)
	importSvc := service.NewImportService(uow, observer)

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo),
		Tasks:     service.NewTaskService(taskRepo, projectRepo),
		Snapshots: snapshotSvc,
		Curves:    curveSvc,
		Import:    importSvc,

		Curve:          curveSvc,
		Status:         curveSvc,
		RecordSnapshot: snapshotSvc,
		ImportProject:  importSvc,

		CatalogSource: catalogSource,
	}

	// Prompts only when stdin is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
