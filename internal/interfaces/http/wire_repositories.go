package http

import (
	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo       user.Repository
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(db, log),
		ticketRepo:     repository.NewTicketRepository(db, log),
		commentRepo:    repository.NewCommentRepository(db),
		attachmentRepo: repository.NewAttachmentRepository(db),
	}
}
