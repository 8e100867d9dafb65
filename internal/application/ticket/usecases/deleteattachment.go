package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	Actor        authorization.Actor
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	fileStore      FileStore
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	fileStore FileStore,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

// Execute removes the stored file first; a missing or unremovable file does
// not block deleting the row.
func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*dto.MessageResponse, error) {
	attachment, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		return nil, err
	}

	if _, err := loadAccessibleTicket(ctx, uc.ticketRepo, cmd.Actor, attachment.TicketID(),
		"You can only delete attachments from your own tickets"); err != nil {
		return nil, err
	}

	if err := uc.fileStore.Remove(ctx, attachment.Filename()); err != nil {
		uc.logger.Warnw("failed to remove attachment file",
			"attachment_id", attachment.ID(),
			"filename", attachment.Filename(),
			"error", err,
		)
	}

	if err := uc.attachmentRepo.Delete(ctx, attachment.ID()); err != nil {
		uc.logger.Errorw("failed to delete attachment", "attachment_id", attachment.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment deleted", "attachment_id", attachment.ID(), "actor_id", cmd.Actor.UserID)
	return &dto.MessageResponse{Message: "Attachment deleted successfully"}, nil
}
