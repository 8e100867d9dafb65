package http

import (
	"fmt"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/storage"
	shareddb "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/services/markdown"
)

// initInfrastructure initializes repositories, credential services, the policy
// enforcer, the attachment store and the ticket notifier.
func (c *Container) initInfrastructure() error {
	c.repos = newRepositories(c.db, c.log)

	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.txManager = shareddb.NewTransactionManager(c.db)
	c.markdown = markdown.NewService()

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.EnsureDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to install default policies: %w", err)
	}
	c.enforcer = enforcer

	if c.fileStore == nil {
		fileStore, err := storage.NewLocalFileStore(c.cfg.Storage.UploadDir, c.cfg.Storage.URLPrefix, c.log)
		if err != nil {
			return fmt.Errorf("failed to initialize upload store: %w", err)
		}
		c.fileStore = fileStore
	}

	if c.notifier == nil {
		c.notifier = newTicketNotifier(c)
	}

	return nil
}

// newTicketNotifier returns the SMTP notifier when mail is configured and a
// no-op notifier otherwise.
func newTicketNotifier(c *Container) ticketNotifier {
	if !c.cfg.Email.Enabled() {
		c.log.Infow("email not configured, ticket notifications disabled")
		return email.NoopNotifier{}
	}

	smtpCfg := email.SMTPConfigFrom(c.cfg.Email, c.cfg.Server.GetBaseURL())
	c.log.Infow("ticket notifications enabled",
		"smtp_host", smtpCfg.Host,
		"from", smtpCfg.FromAddress,
	)
	return email.NewTicketNotifier(email.NewSMTPEmailService(smtpCfg), c.log.Named("notifier"))
}
