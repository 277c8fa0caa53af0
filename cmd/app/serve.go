package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/config"
	"github.com/bagdasarian/freetime-finder/internal/db"
	"github.com/bagdasarian/freetime-finder/internal/freetime"
	"github.com/bagdasarian/freetime-finder/internal/handler"
	"github.com/bagdasarian/freetime-finder/internal/handler/server"
	"github.com/bagdasarian/freetime-finder/internal/logger"
	"github.com/bagdasarian/freetime-finder/internal/repository/postgres"
	"github.com/bagdasarian/freetime-finder/internal/service"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	finder, err := newFinder(cfg.Finder, log)
	if err != nil {
		return err
	}

	database, err := db.NewPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	log.Info("connected to database", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	userRepo := postgres.NewUserRepository(database)
	groupRepo := postgres.NewGroupRepository(database)
	slotRepo := postgres.NewSlotRepository(database)
	snapshotRepo := postgres.NewSnapshotRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	userService := service.NewUserService(userRepo, log)
	groupService := service.NewGroupService(groupRepo, userRepo, log)
	slotService := service.NewSlotService(slotRepo, groupRepo, log)
	schedulingService := service.NewSchedulingService(snapshotRepo, finder, cfg.Finder.DefaultLimit, log)
	statsService := service.NewStatsService(statsRepo, groupRepo)

	h := handler.NewHandler(userService, groupService, slotService, schedulingService, statsService, log)
	srv := server.NewServer(h, cfg.HTTP, log)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func newFinder(cfg config.FinderConfig, log *zap.Logger) (*freetime.Finder, error) {
	mode, err := freetime.ParseExpansionMode(cfg.RecurrenceMode)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return freetime.NewFinder(
		freetime.WithLocation(loc),
		freetime.WithExpansionMode(mode),
		freetime.WithParallelism(cfg.Parallelism),
		freetime.WithLogger(log.Named("finder")),
	), nil
}
