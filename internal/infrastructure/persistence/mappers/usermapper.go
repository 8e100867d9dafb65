package mappers

import (
	"fmt"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		authorization.UserRole(model.Role),
		model.IsActive,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
