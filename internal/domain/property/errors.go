package property

import "errors"

var (
	ErrNotFound     = errors.New("property not found")
	ErrInvalidType  = errors.New("property type does not exist")
	ErrSlugConflict = errors.New("a property with this title already exists")
	ErrEmptySlug    = errors.New("title must contain at least one letter or digit")
)
