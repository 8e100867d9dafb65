package http

import (
	authUsecases "helpdesk/internal/application/auth/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/interfaces/http/middleware"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	registerUC       *authUsecases.RegisterUseCase
	loginUC          *authUsecases.LoginUseCase
	authenticateUC   *authUsecases.AuthenticateUseCase
	getCurrentUserUC *authUsecases.GetCurrentUserUseCase

	// Users
	listUsersUC      *userUsecases.ListUsersUseCase
	createUserUC     *userUsecases.CreateUserUseCase
	getUserUC        *userUsecases.GetUserUseCase
	updateUserUC     *userUsecases.UpdateUserUseCase
	deactivateUserUC *userUsecases.DeactivateUserUseCase

	// Tickets
	createTicketUC      *ticketUsecases.CreateTicketUseCase
	listTicketsUC       *ticketUsecases.ListTicketsUseCase
	getTicketUC         *ticketUsecases.GetTicketUseCase
	updateTicketUC      *ticketUsecases.UpdateTicketUseCase
	getStatisticsUC     *ticketUsecases.GetStatisticsUseCase
	addCommentUC        *ticketUsecases.AddCommentUseCase
	updateCommentUC     *ticketUsecases.UpdateCommentUseCase
	deleteCommentUC     *ticketUsecases.DeleteCommentUseCase
	uploadAttachmentUC  *ticketUsecases.UploadAttachmentUseCase
	uploadAttachmentsUC *ticketUsecases.UploadAttachmentsUseCase
	deleteAttachmentUC  *ticketUsecases.DeleteAttachmentUseCase
}

// initAuth wires the auth use cases and the middlewares that depend on them.
func (c *Container) initAuth() {
	repos := c.repos

	c.ucs.registerUC = authUsecases.NewRegisterUseCase(repos.userRepo, c.hasher, c.jwtSvc, c.log)
	c.ucs.loginUC = authUsecases.NewLoginUseCase(repos.userRepo, c.hasher, c.jwtSvc, c.log)
	c.ucs.authenticateUC = authUsecases.NewAuthenticateUseCase(repos.userRepo, c.jwtSvc, c.log)
	c.ucs.getCurrentUserUC = authUsecases.NewGetCurrentUserUseCase(repos.userRepo, c.log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.ucs.authenticateUC, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
}

func (c *Container) initUsers() {
	repos := c.repos

	c.ucs.listUsersUC = userUsecases.NewListUsersUseCase(repos.userRepo, c.log)
	c.ucs.createUserUC = userUsecases.NewCreateUserUseCase(repos.userRepo, c.hasher, c.log)
	c.ucs.getUserUC = userUsecases.NewGetUserUseCase(repos.userRepo, c.log)
	c.ucs.updateUserUC = userUsecases.NewUpdateUserUseCase(repos.userRepo, c.hasher, c.log)
	c.ucs.deactivateUserUC = userUsecases.NewDeactivateUserUseCase(repos.userRepo, c.log)
}

func (c *Container) initTickets() {
	repos := c.repos

	assembler := ticketUsecases.NewTicketAssembler(repos.userRepo, repos.commentRepo, repos.attachmentRepo, c.markdown)
	policy := ticketUsecases.DefaultUploadPolicy().WithLimits(c.cfg.Storage.MaxFileSize, c.cfg.Storage.MaxFiles)

	c.ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, assembler, c.log)
	c.ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, assembler, c.log)
	c.ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, assembler, c.log)
	c.ucs.updateTicketUC = ticketUsecases.NewUpdateTicketUseCase(repos.ticketRepo, repos.userRepo, assembler, c.notifier, c.log)
	c.ucs.getStatisticsUC = ticketUsecases.NewGetStatisticsUseCase(repos.ticketRepo, c.log)

	c.ucs.addCommentUC = ticketUsecases.NewAddCommentUseCase(repos.ticketRepo, repos.commentRepo, repos.userRepo, assembler, c.log)
	c.ucs.updateCommentUC = ticketUsecases.NewUpdateCommentUseCase(repos.ticketRepo, repos.commentRepo, repos.userRepo, assembler, c.log)
	c.ucs.deleteCommentUC = ticketUsecases.NewDeleteCommentUseCase(repos.ticketRepo, repos.commentRepo, c.log)

	c.ucs.uploadAttachmentUC = ticketUsecases.NewUploadAttachmentUseCase(
		repos.ticketRepo,
		repos.attachmentRepo,
		c.fileStore,
		storage.MimeResolver{},
		storage.Namer{},
		c.txManager,
		policy,
		c.log,
	)
	c.ucs.uploadAttachmentsUC = ticketUsecases.NewUploadAttachmentsUseCase(
		repos.ticketRepo,
		repos.attachmentRepo,
		c.fileStore,
		storage.MimeResolver{},
		storage.Namer{},
		c.txManager,
		policy,
		c.log,
	)
	c.ucs.deleteAttachmentUC = ticketUsecases.NewDeleteAttachmentUseCase(repos.ticketRepo, repos.attachmentRepo, c.fileStore, c.log)
}
