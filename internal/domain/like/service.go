package like

import (
	"context"

	"boolbnb/internal/metrics"
	"boolbnb/internal/pkg/validator"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Check(ctx context.Context, req Request) (bool, error) {
	if err := validator.First(req); err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, req.UserID, req.PropertyID)
}

func (s *Service) Toggle(ctx context.Context, req Request) (bool, error) {
	if err := validator.First(req); err != nil {
		return false, err
	}
	liked, err := s.repo.Toggle(ctx, req.UserID, req.PropertyID)
	if err != nil {
		return false, err
	}
	action := "unlike"
	if liked {
		action = "like"
	}
	metrics.LikesToggled.WithLabelValues(action).Inc()
	return liked, nil
}

func (s *Service) Add(ctx context.Context, req Request) error {
	if err := validator.First(req); err != nil {
		return err
	}
	return s.repo.Add(ctx, req.UserID, req.PropertyID)
}

func (s *Service) Count(ctx context.Context, propertyID int64) (int64, error) {
	if propertyID <= 0 {
		return 0, validator.Invalid("property_id", "property_id must be greater than 0")
	}
	return s.repo.Count(ctx, propertyID)
}
