package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mishasvintus/merge_request_service/internal/config"
	"github.com/mishasvintus/merge_request_service/internal/handler"
	"github.com/mishasvintus/merge_request_service/internal/integration"
	"github.com/mishasvintus/merge_request_service/internal/interdiff"
	"github.com/mishasvintus/merge_request_service/internal/logging"
	"github.com/mishasvintus/merge_request_service/internal/repository"
	"github.com/mishasvintus/merge_request_service/internal/repository/memory"
	"github.com/mishasvintus/merge_request_service/internal/repository/postgres"
	"github.com/mishasvintus/merge_request_service/internal/router"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

const shutdownTimeout = 5 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Apply the database schema before serving",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Pretty)
	if logger.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, c.Bool("migrate"), logger)
	if err != nil {
		return err
	}
	defer closeStore()

	bridge, err := newBridge(cfg, logger)
	if err != nil {
		return err
	}

	differ, err := interdiff.New(cfg.Interdiff.Backend, cfg.Interdiff.Binary, cfg.Interdiff.MaxConcurrent, logger)
	if err != nil {
		return err
	}

	if err := handler.RegisterValidations(); err != nil {
		return err
	}

	lifecycleService := service.NewLifecycleService(store, bridge, logger)
	commentService := service.NewCommentService(store, lifecycleService, logger)
	interdiffService := service.NewInterdiffService(store, differ)

	mergeRequestHandler := handler.NewMergeRequestHandler(lifecycleService, interdiffService)
	commentHandler := handler.NewCommentHandler(commentService)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupRoutes(logger, mergeRequestHandler, commentHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		lifecycleService.Wait()
		logger.Info().Msg("server exited")
		return nil
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config, migrate bool, logger zerolog.Logger) (service.Store, func(), error) {
	if !cfg.UsesPostgres() {
		logger.Warn().Msg("no database host configured, using in-memory store")
		return memory.NewStore(), func() {}, nil
	}

	db, err := repository.NewPostgresDB(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if migrate {
		if err := repository.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info().Msg("database schema applied")
	}

	return postgres.NewStore(db), func() { _ = db.Close() }, nil
}

func newBridge(cfg *config.Config, logger zerolog.Logger) (integration.Bridge, error) {
	ic := cfg.Integration

	if ic.Mode != integration.ModeGit {
		return integration.NewDryRunBridge(logger), nil
	}

	runner := integration.ExecRunner{}

	var remover integration.BranchRemover = integration.NewGitBranchRemover(ic.Workdir, ic.Remote, runner)
	if ic.GitLabProject != "" {
		gl, err := integration.NewGitLabBranchRemover(ic.GitLabURL, ic.GitLabToken, ic.GitLabProject)
		if err != nil {
			return nil, err
		}
		remover = gl
	}

	return integration.NewGitBridge(ic.Workdir, ic.Remote, runner, remover, logger), nil
}
