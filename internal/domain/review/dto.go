package review

import (
	"time"

	"boolbnb/internal/domain"
	"boolbnb/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// AddRequest is the body of POST /properties/:slug/reviews.
type AddRequest struct {
	Rating     int    `json:"rating" validate:"gte=1,lte=5"`
	ReviewText string `json:"review_text" validate:"required,min=3,max=2000"`
	StartDate  string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	UserName   string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail  string `json:"user_email" validate:"required,email,max=255"`
}

// Validate trims and checks req, stopping at the first failure. today is the
// current calendar date; stay dates after it are rejected.
func (r *AddRequest) Validate(today time.Time) error {
	validator.TrimFields(r)
	if err := validator.First(r); err != nil {
		return err
	}
	if (r.StartDate == "") != (r.EndDate == "") {
		return validator.Invalid("start_date", "start_date and end_date must be provided together")
	}
	if r.StartDate == "" {
		return nil
	}

	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	if start.After(end) {
		return validator.Invalid("start_date", "start_date must not be after end_date")
	}
	y, m, d := today.Date()
	if end.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return validator.Invalid("end_date", "stay dates must not be in the future")
	}
	return nil
}

func (r *AddRequest) toReview(propertyID int64) *domain.Review {
	rv := &domain.Review{
		PropertyID: propertyID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		UserName:   r.UserName,
		UserEmail:  r.UserEmail,
	}
	if r.StartDate != "" {
		start, _ := time.Parse(dateLayout, r.StartDate)
		end, _ := time.Parse(dateLayout, r.EndDate)
		rv.StartDate, rv.EndDate = &start, &end
	}
	return rv
}
