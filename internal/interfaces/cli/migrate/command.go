package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	dir        string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&dir, "dir", "./internal/infrastructure/migration/scripts", "Directory to write the migration into")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func openDatabase(cfg *config.Config) error {
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

// requireVersioning rejects goose-only operations on drivers that are synced with AutoMigrate.
func requireVersioning(cfg *config.Config, op string) error {
	if !migration.SupportsVersioning(cfg.Database.Driver) {
		return fmt.Errorf("%s is not supported for the %s driver", op, cfg.Database.Driver)
	}
	return nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	if err := openDatabase(cfg); err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)

	manager := migration.NewManager(cfg.Database.Driver)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	if err := requireVersioning(cfg, "down migration"); err != nil {
		return err
	}
	if err := openDatabase(cfg); err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := migration.NewGooseStrategy().MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	if err := requireVersioning(cfg, "status check"); err != nil {
		return err
	}
	if err := openDatabase(cfg); err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	strategy := migration.NewGooseStrategy()

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}

	log.Infow("creating new migration", "name", name, "dir", dir)

	if err := migration.NewGooseStrategy().Create(dir, name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}
