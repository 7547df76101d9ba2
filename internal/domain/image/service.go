package image

import (
	"context"
	"mime/multipart"

	"boolbnb/internal/domain"
	"boolbnb/internal/metrics"
	"boolbnb/internal/pkg/validator"
	"boolbnb/internal/storage"
)

type Service struct {
	repo  *Repository
	store storage.Store
}

func NewService(repo *Repository, store storage.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) List(ctx context.Context, slug string) ([]domain.PropertyImage, error) {
	return s.repo.ListBySlug(ctx, slug)
}

// Upload stores 1 to storage.MaxBatch files and attaches them to the
// property. Nothing is kept when any step fails.
func (s *Service) Upload(ctx context.Context, slug string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, validator.Invalid("images", "at least one image is required")
	}
	if len(files) > storage.MaxBatch {
		return nil, validator.Invalid("images", "at most %d images are allowed", storage.MaxBatch)
	}
	if err := s.repo.Exists(ctx, slug); err != nil {
		return nil, err
	}

	names, err := storage.WithFiles(ctx, s.store, files, func(names []string) error {
		return s.repo.Attach(ctx, slug, names)
	})
	if err != nil {
		return nil, err
	}
	metrics.ImagesStored.Add(float64(len(names)))
	return names, nil
}
