package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	assembler  *TicketAssembler
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	assembler *TicketAssembler,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketResponse, error) {
	t, err := loadAccessibleTicket(ctx, uc.ticketRepo, query.Actor, query.TicketID, "You can only view your own tickets")
	if err != nil {
		return nil, err
	}
	return uc.assembler.AssembleOne(ctx, query.Actor, t)
}
