package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Actor       authorization.Actor
	TicketID    uint
	Title       *string
	Description *string
	// Status, Priority and the assignee are admin-only and silently dropped otherwise.
	Status   *string
	Priority *string
	// AssigneeSet distinguishes "unassign" (AssigneeID nil) from "leave unchanged".
	AssigneeSet bool
	AssigneeID  *uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	assembler  *TicketAssembler
	notifier   Notifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	assembler *TicketAssembler,
	notifier Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		assembler:  assembler,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketResponse, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	t, err := loadAccessibleTicket(ctx, uc.ticketRepo, cmd.Actor, cmd.TicketID, "You can only update your own tickets")
	if err != nil {
		return nil, err
	}

	if !cmd.Actor.IsAdmin() {
		cmd.Status = nil
		cmd.Priority = nil
		cmd.AssigneeSet = false
		cmd.AssigneeID = nil
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("priority must be one of [LOW MEDIUM HIGH URGENT]")
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	statusChanged := false
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("status must be one of [OPEN IN_PROGRESS RESOLVED CLOSED]")
		}
		if statusChanged, err = t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	assigneeChanged := false
	if cmd.AssigneeSet {
		if cmd.AssigneeID != nil {
			if _, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID); err != nil {
				if errors.IsNotFoundError(err) {
					return nil, errors.NewBadRequestError("Assignee not found")
				}
				return nil, err
			}
		}
		if assigneeChanged, err = t.Assign(cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	view, err := uc.assembler.AssembleOne(ctx, cmd.Actor, t)
	if err != nil {
		return nil, err
	}

	if assigneeChanged && view.Assignee != nil {
		uc.notifier.TicketAssigned(ctx, view.Assignee.Email, view.Assignee.FirstName, t.ID(), t.Title())
	}
	if statusChanged && view.Creator != nil {
		uc.notifier.TicketStatusChanged(ctx, view.Creator.Email, view.Creator.FirstName, t.ID(), t.Title(), t.Status().String())
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", t.ID(),
		"status_changed", statusChanged,
		"assignee_changed", assigneeChanged,
	)
	return view, nil
}
