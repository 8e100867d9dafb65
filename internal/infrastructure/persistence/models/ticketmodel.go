package models

import "helpdesk/internal/shared/constants"

// Relationships are enforced by foreign keys in the SQL migrations; the
// models carry plain ID columns and no gorm associations.

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt  *int64
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	Filename     string `gorm:"size:255;not null;uniqueIndex"`
	OriginalName string `gorm:"size:255;not null"`
	MimeType     string `gorm:"size:100;not null"`
	Size         int64  `gorm:"not null"`
	URL          string `gorm:"size:500;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}

// All returns every model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&TicketModel{},
		&CommentModel{},
		&AttachmentModel{},
	}
}
