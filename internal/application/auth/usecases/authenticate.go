package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// AuthenticateUseCase resolves a bearer token to a live account. The role
// comes from storage, so role changes apply to tokens already issued.
type AuthenticateUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewAuthenticateUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errors.NewUnauthorizedError("missing authorization token")
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		uc.logger.Debugw("token verification failed", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("user no longer exists")
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	return u, nil
}
