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

const MinPasswordLength = 6

type CreateUserCommand struct {
	Actor     authorization.Actor
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserResponse, error) {
	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("Only administrators can create users")
	}

	uc.logger.Infow("executing create user use case", "email", cmd.Email, "actor_id", cmd.Actor.UserID)

	role := authorization.RoleUser
	if cmd.Role != "" {
		role = authorization.UserRole(cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("role must be one of [ADMIN USER]")
		}
	}

	newUser, err := NewAccount(ctx, uc.userRepo, uc.hasher, AccountInput{
		Email:     cmd.Email,
		Password:  cmd.Password,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user created successfully", "user_id", newUser.ID(), "role", newUser.Role())
	return dto.ToUserResponse(newUser), nil
}

// AccountInput carries the fields shared by registration and admin creation.
type AccountInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      authorization.UserRole
}

// NewAccount validates input, rejects a taken email, hashes the password and persists the user.
func NewAccount(ctx context.Context, repo user.Repository, hasher user.PasswordHasher, in AccountInput) (*user.User, error) {
	email, err := vo.NewEmail(in.Email)
	if err != nil {
		return nil, errors.NewValidationError("email must be a valid email address")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, errors.NewValidationError(fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
	}

	exists, err := repo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("User with this email already exists")
	}

	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(email, hash, in.FirstName, in.LastName, in.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := repo.Create(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}
