package domain

import "time"

type PropertyType struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

func (PropertyType) TableName() string { return "property_types" }

// Property is a rentable listing. Slug is derived from Title once, at creation.
type Property struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Description  *string   `json:"description"`
	NumRooms     int       `json:"num_rooms" gorm:"not null"`
	NumBeds      int       `json:"num_beds" gorm:"not null"`
	NumBathrooms int       `json:"num_bathrooms" gorm:"not null"`
	SquareMeters int       `json:"square_meters" gorm:"not null"`
	Address      string    `json:"address" gorm:"size:255;not null"`
	City         string    `json:"city" gorm:"size:100;not null;index"`
	UserName     string    `json:"user_name" gorm:"size:100;not null"`
	UserEmail    string    `json:"user_email" gorm:"size:255;not null"`
	Likes        int64     `json:"likes" gorm:"not null;default:0"`
	TypeID       *int64    `json:"type_id" gorm:"index"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Type *PropertyType `json:"-" gorm:"foreignKey:TypeID"`
}

func (Property) TableName() string { return "properties" }

// PropertyListing is a property row joined with its type name and review
// aggregates, as returned by search and lookups.
type PropertyListing struct {
	Property
	PropertyType *string `json:"property_type"`
	NumReviews   int64   `json:"num_reviews"`
	TotalVotes   *int64  `json:"total_votes"`
}

type PropertyImage struct {
	ID         int64     `json:"-" gorm:"primaryKey"`
	PropertyID int64     `json:"-" gorm:"not null;index"`
	ImgName    string    `json:"img_name" gorm:"size:255;not null"`
	CreatedAt  time.Time `json:"-"`

	Property *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (PropertyImage) TableName() string { return "property_images" }
