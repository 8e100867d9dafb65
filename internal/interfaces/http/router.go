package http

import (
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/shared/logger"

	_ "helpdesk/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter wires the application and returns a router ready for SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface, opts ...ContainerOption) (*Router, error) {
	c, err := NewContainer(db, cfg, log, opts...)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}
