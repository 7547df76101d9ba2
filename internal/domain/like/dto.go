package like

// Request identifies one (user, property) pair. It binds from a JSON body
// or from the query string.
type Request struct {
	UserID     int64 `json:"user_id" form:"user_id" validate:"required,gt=0"`
	PropertyID int64 `json:"property_id" form:"property_id" validate:"required,gt=0"`
}
