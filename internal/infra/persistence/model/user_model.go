// Package model holds the GORM persistence models. They mirror the tables created by the migrations.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	FirstName    string  `gorm:"type:varchar(16);not null"`
	LastName     string  `gorm:"type:varchar(16);not null"`
	Phone        string  `gorm:"type:varchar(32);not null"`
	Role         string  `gorm:"type:varchar(16);not null;default:USER"`
	ImagePath    *string `gorm:"type:varchar(255)"`
	Version      int64   `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
