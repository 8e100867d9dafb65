package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/mapper"
)

// TicketAssembler builds ticket views with their creator, assignee, visible
// comments and attachments, loading each relation in one batch.
type TicketAssembler struct {
	userRepo       user.Repository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	markdown       MarkdownRenderer
}

func NewTicketAssembler(
	userRepo user.Repository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	markdown MarkdownRenderer,
) *TicketAssembler {
	return &TicketAssembler{
		userRepo:       userRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		markdown:       markdown,
	}
}

func (a *TicketAssembler) AssembleOne(ctx context.Context, actor authorization.Actor, t *ticket.Ticket) (*dto.TicketResponse, error) {
	views, err := a.Assemble(ctx, actor, []*ticket.Ticket{t})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (a *TicketAssembler) Assemble(ctx context.Context, actor authorization.Actor, tickets []*ticket.Ticket) ([]*dto.TicketResponse, error) {
	if len(tickets) == 0 {
		return []*dto.TicketResponse{}, nil
	}

	ticketIDs := mapper.MapSlice(tickets, func(t *ticket.Ticket) uint { return t.ID() })

	comments, err := a.commentRepo.ListByTicketIDs(ctx, ticketIDs, actor.IsAdmin())
	if err != nil {
		return nil, err
	}
	// internal comments never reach a non-admin view
	comments = mapper.Filter(comments, func(c *ticket.Comment) bool { return c.IsVisibleTo(actor) })

	attachments, err := a.attachmentRepo.ListByTicketIDs(ctx, ticketIDs)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(tickets)*2+len(comments))
	seen := make(map[uint]struct{})
	addUser := func(id uint) {
		if _, ok := seen[id]; ok || id == 0 {
			return
		}
		seen[id] = struct{}{}
		userIDs = append(userIDs, id)
	}
	for _, t := range tickets {
		addUser(t.CreatorID())
		if t.AssigneeID() != nil {
			addUser(*t.AssigneeID())
		}
	}
	for _, c := range comments {
		addUser(c.AuthorID())
	}

	users, err := a.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := mapper.IndexBy(users, func(u *user.User) uint { return u.ID() })

	commentsByTicket := make(map[uint][]*dto.CommentResponse, len(tickets))
	for _, c := range comments {
		commentsByTicket[c.TicketID()] = append(commentsByTicket[c.TicketID()], a.Comment(c, usersByID[c.AuthorID()]))
	}
	attachmentsByTicket := make(map[uint][]*dto.AttachmentResponse, len(tickets))
	for _, att := range attachments {
		attachmentsByTicket[att.TicketID()] = append(attachmentsByTicket[att.TicketID()], ToAttachmentResponse(att))
	}

	views := make([]*dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		view := &dto.TicketResponse{
			ID:              t.ID(),
			Title:           t.Title(),
			Description:     t.Description(),
			DescriptionHTML: a.markdown.RenderSafe(t.Description()),
			Status:          t.Status().String(),
			Priority:        t.Priority().String(),
			CreatorID:       t.CreatorID(),
			AssigneeID:      t.AssigneeID(),
			CreatedAt:       t.CreatedAt(),
			UpdatedAt:       t.UpdatedAt(),
			ResolvedAt:      t.ResolvedAt(),
			Creator:         userdto.ToUserSummary(usersByID[t.CreatorID()]),
			Comments:        commentsByTicket[t.ID()],
			Attachments:     attachmentsByTicket[t.ID()],
		}
		if t.AssigneeID() != nil {
			view.Assignee = userdto.ToUserSummary(usersByID[*t.AssigneeID()])
		}
		if view.Comments == nil {
			view.Comments = []*dto.CommentResponse{}
		}
		if view.Attachments == nil {
			view.Attachments = []*dto.AttachmentResponse{}
		}
		view.Count = dto.TicketCount{
			Comments:    len(view.Comments),
			Attachments: len(view.Attachments),
		}
		views = append(views, view)
	}
	return views, nil
}

// Comment renders a single comment; author may be nil.
func (a *TicketAssembler) Comment(c *ticket.Comment, author *user.User) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		AuthorID:    c.AuthorID(),
		Content:     c.Content(),
		ContentHTML: a.markdown.RenderSafe(c.Content()),
		IsInternal:  c.IsInternal(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		Author:      userdto.ToUserSummary(author),
	}
}

func ToAttachmentResponse(a *ticket.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		Filename:     a.Filename(),
		OriginalName: a.OriginalName(),
		MimeType:     a.MimeType(),
		Size:         a.Size(),
		URL:          a.URL(),
		CreatedAt:    a.CreatedAt(),
	}
}
