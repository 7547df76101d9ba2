package image

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

func (r *Repository) ListBySlug(ctx context.Context, slug string) ([]domain.PropertyImage, error) {
	db := r.db.WithContext(ctx)
	id, err := property.IDBySlug(ctx, db, slug)
	if err != nil {
		return nil, err
	}

	images := make([]domain.PropertyImage, 0)
	err = db.Where("property_id = ?", id).Order("id ASC").Find(&images).Error
	return images, err
}

// Attach records names as secondary images of the property, resolving slug
// in the same transaction.
func (r *Repository) Attach(ctx context.Context, slug string, names []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := property.IDBySlug(ctx, tx, slug)
		if err != nil {
			return err
		}
		rows := make([]domain.PropertyImage, 0, len(names))
		for _, n := range names {
			rows = append(rows, domain.PropertyImage{PropertyID: id, ImgName: n})
		}
		return tx.Create(&rows).Error
	})
}

func (r *Repository) Exists(ctx context.Context, slug string) error {
	_, err := property.IDBySlug(ctx, r.db.WithContext(ctx), slug)
	return err
}
