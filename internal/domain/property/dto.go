package property

import "boolbnb/internal/domain"

// CreateRequest is the body of POST /properties, sent as JSON or as
// multipart form fields next to the cover_img and images files.
type CreateRequest struct {
	Title        string  `json:"title" form:"title" validate:"required,min=3,max=255"`
	Description  *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	NumRooms     int     `json:"num_rooms" form:"num_rooms" validate:"required,gt=0"`
	NumBeds      int     `json:"num_beds" form:"num_beds" validate:"required,gt=0"`
	NumBathrooms int     `json:"num_bathrooms" form:"num_bathrooms" validate:"required,gt=0"`
	SquareMeters int     `json:"square_meters" form:"square_meters" validate:"required,gt=0"`
	Address      string  `json:"address" form:"address" validate:"required,min=3,max=255"`
	City         string  `json:"city" form:"city" validate:"required,min=2,max=100"`
	UserName     string  `json:"user_name" form:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string  `json:"user_email" form:"user_email" validate:"required,email,max=255"`
	TypeID       *int64  `json:"type_id" form:"type_id" validate:"omitempty,gt=0"`
}

// Normalize maps empty optional values to nil. Form binding turns an empty
// type_id into 0.
func (r *CreateRequest) Normalize() {
	if r.Description != nil && *r.Description == "" {
		r.Description = nil
	}
	if r.TypeID != nil && *r.TypeID == 0 {
		r.TypeID = nil
	}
}

func (r *CreateRequest) toProperty(slug string) *domain.Property {
	return &domain.Property{
		Slug:         slug,
		Title:        r.Title,
		Description:  r.Description,
		NumRooms:     r.NumRooms,
		NumBeds:      r.NumBeds,
		NumBathrooms: r.NumBathrooms,
		SquareMeters: r.SquareMeters,
		Address:      r.Address,
		City:         r.City,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		TypeID:       r.TypeID,
	}
}

type SearchResult struct {
	Results    []domain.PropertyListing `json:"results"`
	Pagination Pagination               `json:"pagination"`
}

type CreateResponse struct {
	Message string `json:"message"`
	Slug    string `json:"slug"`
}
