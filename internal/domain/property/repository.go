package property

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"boolbnb/internal/database"
	"boolbnb/internal/domain"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Search returns one page of listings matching p and the total number of matches.
func (r *Repository) Search(ctx context.Context, p SearchParams) ([]domain.PropertyListing, int64, error) {
	q := BuildSearch(p)
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Raw(q.CountSQL, q.CountArgs...).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	rows := make([]domain.PropertyListing, 0, p.normalized().Limit)
	if total == 0 {
		return rows, 0, nil
	}
	if err := db.Raw(q.PageSQL, q.PageArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("search properties: %w", err)
	}
	return rows, total, nil
}

func (r *Repository) GetListingBySlug(ctx context.Context, slug string) (*domain.PropertyListing, error) {
	return r.getListing(ctx, "p.slug", slug)
}

func (r *Repository) GetListingByID(ctx context.Context, id int64) (*domain.PropertyListing, error) {
	return r.getListing(ctx, "p.id", id)
}

func (r *Repository) getListing(ctx context.Context, keyColumn string, key any) (*domain.PropertyListing, error) {
	var rows []domain.PropertyListing
	if err := r.db.WithContext(ctx).Raw(lookupSQL(keyColumn), key).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Create inserts p and its secondary images in one transaction. The slug is
// computed from the title inside the transaction; p.Slug is set on success.
func (r *Repository) Create(ctx context.Context, p *domain.Property, images []string) error {
	base := p.Slug
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.TypeID != nil {
			var n int64
			if err := tx.Model(&domain.PropertyType{}).Where("id = ?", *p.TypeID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrInvalidType
			}
		}

		slug, err := nextSlug(tx, base)
		if err != nil {
			return err
		}
		p.Slug = slug

		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		rows := make([]domain.PropertyImage, 0, len(images))
		for _, name := range images {
			rows = append(rows, domain.PropertyImage{PropertyID: p.ID, ImgName: name})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		p.Slug = base
		if database.IsUniqueViolation(err) {
			return ErrSlugConflict
		}
		return err
	}
	return nil
}

// nextSlug returns base when it is free, otherwise the first free base-N (N >= 2).
func nextSlug(tx *gorm.DB, base string) (string, error) {
	var taken []string
	if err := tx.Model(&domain.Property{}).
		Where("slug = ? OR slug LIKE ?", base, base+"-%").
		Pluck("slug", &taken).Error; err != nil {
		return "", err
	}

	used := make(map[string]bool, len(taken))
	for _, s := range taken {
		used[s] = true
	}
	if !used[base] {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !used[candidate] {
			return candidate, nil
		}
	}
}

// IncrementLikes bumps the like counter of the property and returns the
// updated row, both in one transaction.
func (r *Repository) IncrementLikes(ctx context.Context, slug string) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Property{}).
			Where("slug = ?", slug).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("slug = ?", slug).First(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListTypes(ctx context.Context) ([]domain.PropertyType, error) {
	types := make([]domain.PropertyType, 0)
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

// IDBySlug resolves a slug to a property id using db, which may be a
// transaction. It returns ErrNotFound when no property has the slug.
func IDBySlug(ctx context.Context, db *gorm.DB, slug string) (int64, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return 0, ErrNotFound
	}
	var p domain.Property
	err := db.WithContext(ctx).Select("id").Where("slug = ?", slug).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// FindBySlug loads the bare property row.
func FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Property, error) {
	var p domain.Property
	err := db.WithContext(ctx).Where("slug = ?", slug).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Exists reports whether a property with id exists.
func Exists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
