package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (string, error)
	Verify(token string) (*auth.Claims, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResponse, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResponse, error)
}

type AuthenticateExecutor interface {
	Execute(ctx context.Context, token string) (*user.User, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*userdto.UserResponse, error)
}
