package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor authorization.Actor
	Page  int
	Limit int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	assembler  *TicketAssembler
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	assembler *TicketAssembler,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

// Execute lists every ticket for admins and only the caller's own otherwise.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*dto.TicketListResponse, error) {
	p := utils.ValidatePagination(query.Page, query.Limit)

	filter := ticket.TicketFilter{Offset: p.Offset(), Limit: p.Limit}
	if !query.Actor.IsAdmin() {
		creatorID := query.Actor.UserID
		filter.CreatorID = &creatorID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	views, err := uc.assembler.Assemble(ctx, query.Actor, tickets)
	if err != nil {
		return nil, err
	}

	return &dto.TicketListResponse{
		Tickets:    views,
		Pagination: utils.NewPaginationMeta(p, total),
	}, nil
}
