package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RAM-73377/jobportaL/internal/database"
	"github.com/RAM-73377/jobportaL/internal/handler"
	"github.com/RAM-73377/jobportaL/internal/repository"
	"github.com/RAM-73377/jobportaL/internal/router"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/RAM-73377/jobportaL/internal/service"
	"github.com/spf13/cobra"
)

const DefaultShutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.loggerService.Shutdown()

			return serve(cmd.Context(), rt, skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply database migrations on start")

	return cmd
}

func serve(parent context.Context, rt *app, skipMigrations bool) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := rt.log

	if !skipMigrations {
		if err := database.Migrate(ctx, &log, rt.cfg); err != nil {
			return err
		}
	}

	srv, err := server.New(rt.cfg, &log, rt.loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		return err
	}

	// Without workers queued activities wait in Redis; the API still serves.
	if err := srv.StartJobs(services.Activity); err != nil {
		log.Error().Err(err).Msg("failed to start background jobs")
	}

	srv.SetupHTTPServer(router.NewRouter(srv, handler.NewHandlers(srv, services)))

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
