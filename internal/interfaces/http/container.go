package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/interfaces/http/middleware"
	shareddb "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// ticketNotifier is a Notifier whose pending deliveries can be awaited on shutdown.
type ticketNotifier interface {
	ticketUsecases.Notifier
	Wait(ctx context.Context) error
}

// Container holds all infrastructure components, repositories, use cases and
// handlers. It is responsible for wiring everything together and providing a
// Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware

	// Infrastructure services
	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	enforcer  *permission.Enforcer
	txManager *shareddb.TransactionManager
	markdown  markdown.Service
	fileStore *storage.FileStore
	notifier  ticketNotifier
}

// ContainerOption overrides a component before wiring.
type ContainerOption func(*Container)

// WithFileStore replaces the disk-backed attachment store.
func WithFileStore(fs *storage.FileStore) ContainerOption {
	return func(c *Container) {
		c.fileStore = fs
	}
}

// WithNotifier replaces the configured ticket notifier.
func WithNotifier(n ticketNotifier) ContainerOption {
	return func(c *Container) {
		c.notifier = n
	}
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		ucs:    &allUseCases{},
		hdlrs:  &allHandlers{},
	}
	for _, opt := range opts {
		opt(c)
	}

	// Section 1: repositories, credentials, policies, storage, notifications
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: use cases
	c.initAuth()
	c.initUsers()
	c.initTickets()

	// Section 3: handlers
	c.initHandlers()

	return c, nil
}

// Shutdown waits for in-flight ticket notifications until ctx expires.
func (c *Container) Shutdown(ctx context.Context) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Wait(ctx); err != nil {
		c.log.Warnw("pending notifications dropped on shutdown", "error", err)
	}
}
