package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUserQuery struct {
	Actor  authorization.Actor
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute checks access before lookup so a USER cannot probe which ids exist.
func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserWithCountsResponse, error) {
	if !query.Actor.CanAccessOwnedBy(query.UserID) {
		return nil, errors.NewForbiddenError("You can only view your own profile")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	counts, err := uc.userRepo.TicketCounts(ctx, []uint{u.ID()})
	if err != nil {
		uc.logger.Errorw("failed to count user tickets", "user_id", u.ID(), "error", err)
		return nil, err
	}

	return dto.ToUserWithCountsResponse(u, counts[u.ID()]), nil
}
