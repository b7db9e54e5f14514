package model

import "time"

// AdModel mirrors the 'ads' table. AuthorID references users.id.
type AdModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(32);not null"`
	Description string     `gorm:"type:varchar(64);not null"`
	Price       int        `gorm:"not null"`
	ImagePath   *string    `gorm:"type:varchar(255)"`
	AuthorID    int64      `gorm:"not null;index"`
	Author      *UserModel `gorm:"foreignKey:AuthorID"`
	Version     int64      `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdModel) TableName() string {
	return "ads"
}
