package like

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"boolbnb/internal/domain"
	"boolbnb/internal/domain/property"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Exists(ctx context.Context, userID, propertyID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&n).Error
	return n > 0, err
}

// Toggle removes the like if present, otherwise inserts it, in one
// transaction. It reports whether the pair is liked afterwards.
func (r *Repository) Toggle(ctx context.Context, userID, propertyID int64) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireProperty(ctx, tx, propertyID); err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND property_id = ?", userID, propertyID).Delete(&domain.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		liked = true
		return insertIgnore(tx, userID, propertyID)
	})
	return liked, err
}

// Add inserts the like. Liking twice is not an error.
func (r *Repository) Add(ctx context.Context, userID, propertyID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireProperty(ctx, tx, propertyID); err != nil {
			return err
		}
		return insertIgnore(tx, userID, propertyID)
	})
}

func (r *Repository) Count(ctx context.Context, propertyID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).Where("property_id = ?", propertyID).Count(&n).Error
	return n, err
}

func requireProperty(ctx context.Context, tx *gorm.DB, propertyID int64) error {
	ok, err := property.Exists(ctx, tx, propertyID)
	if err != nil {
		return err
	}
	if !ok {
		return property.ErrNotFound
	}
	return nil
}

func insertIgnore(tx *gorm.DB, userID, propertyID int64) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Like{UserID: userID, PropertyID: propertyID}).Error
}
