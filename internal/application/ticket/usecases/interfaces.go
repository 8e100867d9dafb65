package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketResponse, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*dto.TicketListResponse, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketResponse, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketResponse, error)
}

type GetStatisticsExecutor interface {
	Execute(ctx context.Context, query GetStatisticsQuery) (*dto.StatisticsResponse, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentResponse, error)
}

type UpdateCommentExecutor interface {
	Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentResponse, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) (*dto.MessageResponse, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentResponse, error)
}

type UploadAttachmentsExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*dto.MultiUploadResponse, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*dto.MessageResponse, error)
}
