package model

import "time"

// CommentModel mirrors the 'comments' table. AdID references ads.id.
type CommentModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Text      string     `gorm:"type:varchar(64);not null"`
	AdID      int64      `gorm:"not null;index"`
	AuthorID  int64      `gorm:"not null"`
	Author    *UserModel `gorm:"foreignKey:AuthorID"`
	Version   int64      `gorm:"not null;default:1"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
