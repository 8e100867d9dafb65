package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes every mutable column. A map is used so that a cleared
// assignee or resolution time is stored as NULL.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"assignee_id": model.AssigneeID,
			"resolved_at": model.ResolvedAt,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	if err := query.
		Scopes(db.NewestFirst(), db.Paginate(filter.Offset, filter.Limit)).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

type statusCount struct {
	Status string
	Total  int64
}

// CountByStatus groups tickets by status, optionally only those created by creatorID.
func (r *TicketRepository) CountByStatus(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Select("status, COUNT(*) AS total")

	if creatorID != nil {
		query = query.Where("creator_id = ?", *creatorID)
	}

	var rows []statusCount
	if err := query.Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		counts[vo.TicketStatus(row.Status)] = row.Total
	}
	return counts, nil
}
