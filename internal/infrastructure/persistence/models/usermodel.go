package models

import "helpdesk/internal/shared/constants"

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;index"`
	IsActive     bool   `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
