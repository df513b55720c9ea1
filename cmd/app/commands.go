package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "ordering",
		Short:         "Users, orders and order items over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")

	root.AddCommand(newServeCmd(&envFile))
	root.AddCommand(newMigrateCmd(&envFile))
	root.AddCommand(newGrantAdminCmd(&envFile))
	return root
}

func newServeCmd(envFile *string) *cobra.Command {
	var migrate bool

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the purge job",
		RunE: func(c *cobra.Command, _ []string) error {
			config, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			if migrate {
				if err := postgres.Migrate(db); err != nil {
					return err
				}
			}

			app, err := cmd.NewCompositionRoot(config, db, logger)
			if err != nil {
				return err
			}
			return serveUntilSignal(c.Context(), &app, config, logger)
		},
	}
	serve.Flags().BoolVar(&migrate, "migrate", true, "apply schema migrations before serving")
	return serve
}

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			if err := postgres.Migrate(db); err != nil {
				return err
			}
			logger.Info("Schema migrated")
			return nil
		},
	}
}

func newGrantAdminCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin <email>",
		Short: "Give the admin role to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			config, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			app, err := cmd.NewCompositionRoot(config, db, logger)
			if err != nil {
				return err
			}

			command, err := commands.NewGrantAdminCommand(args[0])
			if err != nil {
				return err
			}
			handler := app.CreateGrantAdminCommandHandler()
			granted, err := handler.Handle(c.Context(), command)
			if err != nil {
				return err
			}

			logger.Info("Admin role granted", "user_id", granted.ID().Int64(), "email", granted.Email())
			return nil
		},
	}
}

func bootstrap(envFile string) (cmd.Config, *slog.Logger, *gorm.DB, error) {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))

	gormLevel := gormlogger.Warn
	if config.LogLevel <= slog.LevelDebug {
		gormLevel = gormlogger.Info
	}
	dsn := postgres.DSN(config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
	db, err := postgres.Open(dsn, gormLevel)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	return config, logger, db, nil
}

func serveUntilSignal(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := app.CreateEcho()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()
	log.Infof("HTTP server listening on port %s", config.HTTPPort)

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
