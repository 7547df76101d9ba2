// Package seed fills a database with fake listings for local development.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"boolbnb/internal/domain"
	"boolbnb/internal/domain/property"
	"boolbnb/internal/domain/user"
	"boolbnb/internal/pkg/slug"
)

var PropertyTypes = []string{"Apartment", "Villa", "Loft", "Cabin", "Studio"}

type Options struct {
	Properties int
	Users      int
	// MaxReviews is the upper bound of reviews per listing.
	MaxReviews int
	// Seed makes the generated data reproducible; zero uses the clock.
	Seed int64
	// Reset deletes existing rows first.
	Reset bool
}

type Result struct {
	Types      int
	Properties int
	Reviews    int
	Likes      int
	Users      int
}

// Run inserts fake data through the same repositories the API uses, so
// slugs and images follow the production rules.
func Run(ctx context.Context, db *gorm.DB, opts Options) (*Result, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	f := gofakeit.New(opts.Seed)
	res := &Result{}

	if opts.Reset {
		if err := reset(ctx, db); err != nil {
			return nil, err
		}
	}

	types := make([]domain.PropertyType, 0, len(PropertyTypes))
	for _, name := range PropertyTypes {
		pt := domain.PropertyType{Name: name}
		if err := db.WithContext(ctx).Where(domain.PropertyType{Name: name}).FirstOrCreate(&pt).Error; err != nil {
			return nil, fmt.Errorf("seed property type %s: %w", name, err)
		}
		types = append(types, pt)
	}
	res.Types = len(types)

	users := make([]domain.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		hash, err := user.HashPassword("password123", 4)
		if err != nil {
			return nil, err
		}
		u := domain.User{
			Name:         f.Name(),
			Email:        fmt.Sprintf("%d.%s", i, strings.ToLower(f.Email())),
			PasswordHash: hash,
			UserType:     domain.UserType(f.RandomString([]string{string(domain.UserTypeGuest), string(domain.UserTypeOwner)})),
		}
		if err := db.WithContext(ctx).Create(&u).Error; err != nil {
			return nil, fmt.Errorf("seed user: %w", err)
		}
		users = append(users, u)
	}
	res.Users = len(users)

	repo := property.NewRepository(db)
	for i := 0; i < opts.Properties; i++ {
		p := fakeProperty(f, types)
		if err := repo.Create(ctx, p, nil); err != nil {
			return nil, fmt.Errorf("seed property %q: %w", p.Title, err)
		}
		res.Properties++

		for j := 0; j < f.Number(0, opts.MaxReviews); j++ {
			if err := db.WithContext(ctx).Create(fakeReview(f, p.ID)).Error; err != nil {
				return nil, fmt.Errorf("seed review: %w", err)
			}
			res.Reviews++
		}

		for _, u := range users {
			if !f.Bool() {
				continue
			}
			if err := db.WithContext(ctx).Create(&domain.Like{UserID: u.ID, PropertyID: p.ID}).Error; err != nil {
				return nil, fmt.Errorf("seed like: %w", err)
			}
			res.Likes++
		}
	}
	return res, nil
}

func fakeProperty(f *gofakeit.Faker, types []domain.PropertyType) *domain.Property {
	title := fmt.Sprintf("%s %s in %s", cases.Title(language.English).String(f.Adjective()), f.RandomString(PropertyTypes), f.City())
	desc := f.Paragraph(1, 3, 12, " ")
	typeID := types[f.Number(0, len(types)-1)].ID
	rooms := f.Number(1, 6)
	return &domain.Property{
		Slug:         slug.Make(title),
		Title:        title,
		Description:  &desc,
		NumRooms:     rooms,
		NumBeds:      f.Number(1, rooms+2),
		NumBathrooms: f.Number(1, 3),
		SquareMeters: f.Number(25, 250),
		Address:      f.Street(),
		City:         f.City(),
		UserName:     f.Name(),
		UserEmail:    strings.ToLower(f.Email()),
		TypeID:       &typeID,
	}
}

func fakeReview(f *gofakeit.Faker, propertyID int64) *domain.Review {
	end := f.DateRange(time.Now().AddDate(-2, 0, 0), time.Now().AddDate(0, 0, -1)).Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -f.Number(1, 14))
	return &domain.Review{
		PropertyID: propertyID,
		Rating:     f.Number(1, 5),
		ReviewText: f.Sentence(12),
		StartDate:  &start,
		EndDate:    &end,
		UserName:   f.Name(),
		UserEmail:  strings.ToLower(f.Email()),
	}
}

func reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&domain.Like{}, &domain.Message{}, &domain.Review{}, &domain.PropertyImage{}, &domain.Property{}, &domain.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return fmt.Errorf("reset: %w", err)
			}
		}
		return nil
	})
}
