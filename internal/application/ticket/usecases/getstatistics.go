package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type GetStatisticsQuery struct {
	Actor authorization.Actor
}

type GetStatisticsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetStatisticsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute counts tickets per status with the same visibility as the ticket list.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, query GetStatisticsQuery) (*dto.StatisticsResponse, error) {
	var creatorID *uint
	if !query.Actor.IsAdmin() {
		id := query.Actor.UserID
		creatorID = &id
	}

	counts, err := uc.ticketRepo.CountByStatus(ctx, creatorID)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}

	stats := ticket.NewStatistics(counts)
	return &dto.StatisticsResponse{
		Total:      stats.Total,
		Open:       stats.Open,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
		Closed:     stats.Closed,
	}, nil
}
