package model

import (
	"time"
)

// UserModel mirrors the 'users' table created by the goose migrations.
type UserModel struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Address   string  `gorm:"type:text;not null"`
	Password  *string `gorm:"column:password"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
