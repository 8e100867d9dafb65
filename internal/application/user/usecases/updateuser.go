package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	Actor     authorization.Actor
	UserID    uint
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
	// Role and IsActive are ignored unless Actor is an admin.
	Role     *string
	IsActive *bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserResponse, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)

	if !cmd.Actor.CanAccessOwnedBy(cmd.UserID) {
		return nil, errors.NewForbiddenError("You can only update your own profile")
	}
	if !cmd.Actor.IsAdmin() {
		cmd.Role = nil
		cmd.IsActive = nil
	}
	if cmd.IsActive != nil && !*cmd.IsActive && cmd.UserID == cmd.Actor.UserID {
		return nil, errors.NewBadRequestError("You cannot deactivate your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError("email must be a valid email address")
		}
		if !email.Equals(u.Email()) {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
			if err != nil {
				uc.logger.Errorw("failed to check email existence", "error", err)
				return nil, err
			}
			if exists {
				return nil, errors.NewConflictError("Email already in use")
			}
			u.ChangeEmail(email)
		}
	}

	if err := u.UpdateProfile(cmd.FirstName, cmd.LastName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < MinPasswordLength {
			return nil, errors.NewValidationError(fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		if err := u.ChangeRole(authorization.UserRole(*cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.IsActive != nil {
		u.SetActive(*cmd.IsActive)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "user_id", u.ID())
	return dto.ToUserResponse(u), nil
}
