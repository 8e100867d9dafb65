package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute reports unknown email, inactive account and wrong password identically.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResponse, error) {
	invalid := errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)

	existingUser, err := uc.userRepo.GetByEmail(ctx, vo.NormalizeEmail(cmd.Email))
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("login failed: unknown email", "email", cmd.Email)
			return nil, invalid
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if !existingUser.IsActive() {
		uc.logger.Warnw("login failed: inactive account", "user_id", existingUser.ID())
		return nil, invalid
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed: password mismatch", "user_id", existingUser.ID())
		return nil, invalid
	}

	token, err := uc.tokens.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())
	return &dto.AuthResponse{User: userdto.ToUserResponse(existingUser), Token: token}, nil
}
