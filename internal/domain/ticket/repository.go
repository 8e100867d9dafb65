package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Missing rows are reported as not-found AppErrors by every Get method.

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// List returns one page of tickets, newest first, and the unpaged total.
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error)
}

type TicketFilter struct {
	CreatorID *uint
	Offset    int
	Limit     int
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, commentID uint) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// ListByTicketIDs returns comments oldest first.
	ListByTicketIDs(ctx context.Context, ticketIDs []uint, includeInternal bool) ([]*Comment, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, attachmentID uint) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	// ListByTicketIDs returns attachments oldest first.
	ListByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*Attachment, error)
}
