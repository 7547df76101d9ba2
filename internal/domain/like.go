package domain

import "time"

// Like records that a user liked a property. One row per (user, property).
type Like struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_property"`
	PropertyID int64     `json:"property_id" gorm:"not null;index;uniqueIndex:idx_likes_user_property"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Property *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string { return "likes" }
