package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/seed"
	"helpdesk/internal/shared/logger"
)

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed demo data",
		Long:  `Create the demo admin and user accounts, sample tickets and the default permission policies. Existing records are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("seed")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()

	if autoMigrate {
		if err := migration.NewManager(cfg.Database.Driver).Migrate(db, migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	seeder := seed.NewSeeder(
		repository.NewUserRepository(db, log),
		repository.NewTicketRepository(db, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		enforcer,
		log,
	)

	log.Infow("seeding database", "environment", env)

	result, err := seeder.Run(cmd.Context())
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database seeding completed: %d users, %d tickets created\n", result.UsersCreated, result.TicketsCreated)
	fmt.Fprintln(out, "Login credentials:")
	fmt.Fprintln(out, "  Admin: admin@crm.com / admin123")
	fmt.Fprintln(out, "  User:  user@crm.com / user123")

	return nil
}
