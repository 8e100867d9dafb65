package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
	Priority    string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	assembler  *TicketAssembler
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	assembler *TicketAssembler,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketResponse, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.Actor.UserID)

	priority, err := vo.ParsePriorityOrDefault(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("priority must be one of [LOW MEDIUM HIGH URGENT]")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, priority, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "priority", newTicket.Priority())
	return uc.assembler.AssembleOne(ctx, cmd.Actor, newTicket)
}
