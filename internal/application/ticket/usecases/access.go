package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

// loadAccessibleTicket reports a missing ticket as 404 before checking ownership.
func loadAccessibleTicket(
	ctx context.Context,
	repo ticket.TicketRepository,
	actor authorization.Actor,
	ticketID uint,
	forbiddenMessage string,
) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !t.CanBeAccessedBy(actor) {
		return nil, errors.NewForbiddenError(forbiddenMessage)
	}
	return t, nil
}
