package mappers

import (
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket aggregates (ticket,
// comment, attachment) and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
		ResolvedAt:  biztime.ToMillisPtr(t.ResolvedAt()),
	}
}

// ToDomain converts the ticket row only; comments and attachments are loaded separately.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.CreatorID,
		model.AssigneeID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
		biztime.FromMillisPtr(model.ResolvedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsInternal,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		Filename:     a.Filename(),
		OriginalName: a.OriginalName(),
		MimeType:     a.MimeType(),
		Size:         a.Size(),
		URL:          a.URL(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.Filename,
		model.OriginalName,
		model.MimeType,
		model.Size,
		model.URL,
		biztime.FromMillis(model.CreatedAt),
	)
}
