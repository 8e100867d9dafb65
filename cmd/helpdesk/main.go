package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/seed"
	"helpdesk/internal/interfaces/cli/server"
	"helpdesk/internal/shared/version"
)

//	@title						Helpdesk CRM API
//	@version					1.0
//	@description				Support ticket CRM: accounts, tickets, comments and attachments.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:     "helpdesk",
		Short:   "Helpdesk - support ticket CRM",
		Long:    `Helpdesk serves the ticketing REST API and ships the migration and seeding tools it needs.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
