package review

import (
	"context"
	"time"

	"boolbnb/internal/domain"
)

type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Add validates req before touching the database, then stores the review.
func (s *Service) Add(ctx context.Context, slug string, req *AddRequest) (*domain.Review, error) {
	if err := req.Validate(s.now()); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, slug, req.toReview)
}

func (s *Service) ListBySlug(ctx context.Context, slug string) ([]domain.Review, error) {
	return s.repo.ListBySlug(ctx, slug)
}
