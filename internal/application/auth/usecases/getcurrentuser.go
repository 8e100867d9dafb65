package usecases

import (
	"context"

	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*userdto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return userdto.ToUserResponse(u), nil
}
