package domain

import "time"

// Message is a visitor's note to a listing owner. Append-only.
type Message struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	PropertyID  int64     `json:"property_id" gorm:"not null;index"`
	SenderEmail string    `json:"sender_email" gorm:"size:255;not null"`
	MessageText string    `json:"message_text" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`

	Property *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (Message) TableName() string { return "messages" }
