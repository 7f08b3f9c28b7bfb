package main

import (
	"fmt"

	"github.com/RAM-73377/jobportaL/internal/config"
	"github.com/RAM-73377/jobportaL/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is what every command needs before touching a dependency.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	return &app{
		cfg:           cfg,
		log:           logger.NewLoggerWithService(cfg.Observability, loggerService),
		loggerService: loggerService,
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobportal",
		Short:         "Job portal backend: blog posts, job stats and recent activities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newPostsCmd(),
	)

	return root
}
