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

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Attachment not found")
	}
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model)
}

func (r *AttachmentRepository) ListByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*ticket.Attachment, error) {
	if len(ticketIDs) == 0 {
		return []*ticket.Attachment{}, nil
	}

	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id IN ?", ticketIDs).
		Scopes(db.OldestFirst()).
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(attachmentModels))
	for i := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&attachmentModels[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}
