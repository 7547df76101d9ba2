package review

import (
	"context"

	"gorm.io/gorm"

	"boolbnb/internal/domain"
	"boolbnb/internal/domain/property"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create resolves slug and inserts the review built by build in one
// transaction. It returns property.ErrNotFound for an unknown slug.
func (r *Repository) Create(ctx context.Context, slug string, build func(propertyID int64) *domain.Review) (*domain.Review, error) {
	var rv *domain.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := property.IDBySlug(ctx, tx, slug)
		if err != nil {
			return err
		}
		rv = build(id)
		return tx.Create(rv).Error
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// ListBySlug returns the reviews of a property, newest first.
func (r *Repository) ListBySlug(ctx context.Context, slug string) ([]domain.Review, error) {
	db := r.db.WithContext(ctx)
	id, err := property.IDBySlug(ctx, db, slug)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0)
	err = db.Where("property_id = ?", id).
		Order("created_at DESC").Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}
