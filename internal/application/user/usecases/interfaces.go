package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserWithCountsResponse, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserResponse, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserWithCountsResponse, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserResponse, error)
}

type DeactivateUserExecutor interface {
	Execute(ctx context.Context, cmd DeactivateUserCommand) (*dto.UserResponse, error)
}
