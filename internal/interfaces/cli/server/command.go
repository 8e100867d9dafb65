package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(cfg.Server.Mode)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"version", version.String(),
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(cfg); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, logger.NewLogger())
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes(cfg)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"base_url", cfg.Server.GetBaseURL(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down server...", "signal", sig.String())
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	router.Shutdown(ctx)

	logger.Info("server exited gracefully")
	return nil
}

// handleMigrations applies migrations when --auto-migrate is set and otherwise
// only reports the schema version.
func handleMigrations(cfg *config.Config) error {
	db := database.Get()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment")
		}

		logger.Info("running auto-migration", "driver", cfg.Database.Driver)
		if err := migration.NewManager(cfg.Database.Driver).Migrate(db, migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed successfully")
		return nil
	}

	if !migration.SupportsVersioning(cfg.Database.Driver) {
		logger.Info("schema versioning not tracked for driver, run with --auto-migrate to sync tables",
			"driver", cfg.Database.Driver)
		return nil
	}

	current, err := migration.NewGooseStrategy().GetVersion(db)
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}
	logger.Info("current migration version", "version", current)

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return gin.ReleaseMode
	case "development", "dev":
		return gin.DebugMode
	case "test", "testing":
		return gin.TestMode
	case "debug":
		return gin.DebugMode
	case "release":
		return gin.ReleaseMode
	default:
		return gin.DebugMode
	}
}
