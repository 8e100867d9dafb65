package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
	userdto "helpdesk/internal/application/user/dto"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute always creates a USER account; admins are created through the user directory.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResponse, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	newUser, err := userusecases.NewAccount(ctx, uc.userRepo, uc.hasher, userusecases.AccountInput{
		Email:     cmd.Email,
		Password:  cmd.Password,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Role:      authorization.RoleUser,
	})
	if err != nil {
		uc.logger.Warnw("registration rejected", "email", cmd.Email, "error", err)
		return nil, err
	}

	token, err := uc.tokens.Generate(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())
	return &dto.AuthResponse{User: userdto.ToUserResponse(newUser), Token: token}, nil
}
