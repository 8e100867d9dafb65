package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

type ListUsersQuery struct {
	Actor authorization.Actor
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserWithCountsResponse, error) {
	if !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("Only administrators can view all users")
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	ids := mapper.MapSlice(users, func(u *user.User) uint { return u.ID() })
	counts, err := uc.userRepo.TicketCounts(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count user tickets", "error", err)
		return nil, err
	}

	return mapper.MapSlice(users, func(u *user.User) *dto.UserWithCountsResponse {
		return dto.ToUserWithCountsResponse(u, counts[u.ID()])
	}), nil
}
