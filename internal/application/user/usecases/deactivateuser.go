package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeactivateUserCommand struct {
	Actor  authorization.Actor
	UserID uint
}

type DeactivateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeactivateUserUseCase(userRepo user.Repository, logger logger.Interface) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeactivateUserUseCase) Execute(ctx context.Context, cmd DeactivateUserCommand) (*dto.UserResponse, error) {
	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("Only administrators can deactivate users")
	}
	if cmd.Actor.UserID == cmd.UserID {
		return nil, errors.NewBadRequestError("You cannot deactivate your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	u.Deactivate()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to deactivate user", "user_id", u.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user deactivated", "user_id", u.ID(), "actor_id", cmd.Actor.UserID)
	return dto.ToUserResponse(u), nil
}
