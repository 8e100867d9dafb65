package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	Content    string
	IsInternal bool
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	assembler   *TicketAssembler
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	assembler *TicketAssembler,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		assembler:   assembler,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentResponse, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.Actor.UserID)

	if _, err := loadAccessibleTicket(ctx, uc.ticketRepo, cmd.Actor, cmd.TicketID, "You can only comment on your own tickets"); err != nil {
		return nil, err
	}

	isInternal := cmd.IsInternal && cmd.Actor.IsAdmin()

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.UserID, cmd.Content, isInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "internal", isInternal)
	return uc.assembler.Comment(comment, author), nil
}

type UpdateCommentCommand struct {
	Actor     authorization.Actor
	CommentID uint
	Content   *string
	// IsInternal is ignored unless Actor is an admin.
	IsInternal *bool
}

type UpdateCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	assembler   *TicketAssembler
	logger      logger.Interface
}

func NewUpdateCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	assembler *TicketAssembler,
	logger logger.Interface,
) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		assembler:   assembler,
		logger:      logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentResponse, error) {
	comment, err := loadModifiableComment(ctx, uc.ticketRepo, uc.commentRepo, cmd.Actor, cmd.CommentID,
		"You can only update your own comments")
	if err != nil {
		return nil, err
	}

	if cmd.Content != nil {
		if err := comment.UpdateContent(*cmd.Content); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.IsInternal != nil && cmd.Actor.IsAdmin() {
		comment.SetInternal(*cmd.IsInternal)
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		uc.logger.Errorw("failed to update comment", "comment_id", comment.ID(), "error", err)
		return nil, err
	}

	author, err := uc.userRepo.GetByID(ctx, comment.AuthorID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	uc.logger.Infow("comment updated successfully", "comment_id", comment.ID())
	return uc.assembler.Comment(comment, author), nil
}

type DeleteCommentCommand struct {
	Actor     authorization.Actor
	CommentID uint
}

type DeleteCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*dto.MessageResponse, error) {
	comment, err := loadModifiableComment(ctx, uc.ticketRepo, uc.commentRepo, cmd.Actor, cmd.CommentID,
		"You can only delete your own comments")
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepo.Delete(ctx, comment.ID()); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", comment.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("comment deleted", "comment_id", comment.ID(), "actor_id", cmd.Actor.UserID)
	return &dto.MessageResponse{Message: "Comment deleted successfully"}, nil
}

// loadModifiableComment hides internal comments from non-admins entirely, then
// requires authorship (or admin) and, for a USER, ownership of the ticket.
func loadModifiableComment(
	ctx context.Context,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	actor authorization.Actor,
	commentID uint,
	notAuthorMessage string,
) (*ticket.Comment, error) {
	comment, err := commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !comment.IsVisibleTo(actor) {
		return nil, errors.NewNotFoundError("Comment not found")
	}
	if !comment.CanBeModifiedBy(actor) {
		return nil, errors.NewForbiddenError(notAuthorMessage)
	}
	if _, err := loadAccessibleTicket(ctx, ticketRepo, actor, comment.TicketID(),
		"You can only access comments on your own tickets"); err != nil {
		return nil, err
	}
	return comment, nil
}
