package domain

import "time"

type Review struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	PropertyID int64      `json:"property_id" gorm:"not null;index"`
	Rating     int        `json:"rating" gorm:"type:smallint;not null"`
	ReviewText string     `json:"review_text" gorm:"type:text;not null"`
	StartDate  *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	EndDate    *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	UserName   string     `json:"user_name" gorm:"size:100;not null"`
	UserEmail  string     `json:"user_email" gorm:"size:255;not null"`
	CreatedAt  time.Time  `json:"created_at"`

	Property *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (Review) TableName() string { return "reviews" }
