package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CommentModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"content":     c.Content(),
			"is_internal": c.IsInternal(),
			"updated_at":  c.UpdatedAt().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}

	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Comment not found")
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicketIDs(ctx context.Context, ticketIDs []uint, includeInternal bool) ([]*ticket.Comment, error) {
	if len(ticketIDs) == 0 {
		return []*ticket.Comment{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("ticket_id IN ?", ticketIDs)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var commentModels []models.CommentModel
	if err := query.Scopes(db.OldestFirst()).Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
