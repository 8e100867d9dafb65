package http

import (
	"helpdesk/internal/interfaces/http/handlers"
	ticketHandlers "helpdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	authHandler   *handlers.AuthHandler
	userHandler   *handlers.UserHandler
	ticketHandler *ticketHandlers.TicketHandler
	systemHandler *handlers.SystemHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	c.hdlrs.authHandler = handlers.NewAuthHandler(
		ucs.registerUC,
		ucs.loginUC,
		ucs.getCurrentUserUC,
		c.log,
	)

	c.hdlrs.userHandler = handlers.NewUserHandler(
		ucs.listUsersUC,
		ucs.createUserUC,
		ucs.getUserUC,
		ucs.updateUserUC,
		ucs.deactivateUserUC,
		c.log,
	)

	c.hdlrs.ticketHandler = ticketHandlers.NewTicketHandler(
		ucs.createTicketUC,
		ucs.listTicketsUC,
		ucs.getTicketUC,
		ucs.updateTicketUC,
		ucs.getStatisticsUC,
		ucs.addCommentUC,
		ucs.updateCommentUC,
		ucs.deleteCommentUC,
		ucs.uploadAttachmentUC,
		ucs.uploadAttachmentsUC,
		ucs.deleteAttachmentUC,
		c.cfg.Storage.MaxFileSize,
		c.cfg.Storage.MaxFiles,
		c.log,
	)

	c.hdlrs.systemHandler = handlers.NewSystemHandler(c.fileStore, c.log)
}
