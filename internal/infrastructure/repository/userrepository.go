package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("User with this email already exists")
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	return nil
}

// Update writes every mutable column, including false/zero values.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"first_name":    model.FirstName,
			"last_name":     model.LastName,
			"role":          model.Role,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("Email already in use")
		}
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByIDs skips ids that do not exist.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to get users by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return r.toDomainList(userModels)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", vo.NormalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).
		Where("email = ?", vo.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.NewestFirst()).Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.toDomainList(userModels)
}

type userTicketCount struct {
	UserID uint
	Total  int64
}

// TicketCounts returns created/assigned ticket totals; users without tickets are absent.
func (r *UserRepository) TicketCounts(ctx context.Context, userIDs []uint) (map[uint]user.TicketCounts, error) {
	result := make(map[uint]user.TicketCounts, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var created []userTicketCount
	if err := tx.Model(&models.TicketModel{}).
		Select("creator_id AS user_id, COUNT(*) AS total").
		Where("creator_id IN ?", userIDs).
		Group("creator_id").
		Scan(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to count created tickets: %w", err)
	}

	var assigned []userTicketCount
	if err := tx.Model(&models.TicketModel{}).
		Select("assignee_id AS user_id, COUNT(*) AS total").
		Where("assignee_id IN ?", userIDs).
		Group("assignee_id").
		Scan(&assigned).Error; err != nil {
		return nil, fmt.Errorf("failed to count assigned tickets: %w", err)
	}

	for _, row := range created {
		counts := result[row.UserID]
		counts.Created = row.Total
		result[row.UserID] = counts
	}
	for _, row := range assigned {
		counts := result[row.UserID]
		counts.Assigned = row.Total
		result[row.UserID] = counts
	}

	return result, nil
}

func (r *UserRepository) toDomainList(userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			r.logger.Errorw("failed to map user model", "id", userModels[i].ID, "error", err)
			return nil, fmt.Errorf("failed to map user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}
