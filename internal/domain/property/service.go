package property

import (
	"context"
	"mime/multipart"

	"boolbnb/internal/domain"
	"boolbnb/internal/pkg/slug"
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

func (s *Service) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	rows, total, err := s.repo.Search(ctx, p)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Results: rows, Pagination: NewPagination(p, total)}, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.PropertyListing, error) {
	return s.repo.GetListingBySlug(ctx, slug)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.PropertyListing, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetListingByID(ctx, id)
}

// Create validates req, stores the optional cover and secondary images and
// inserts the listing. It returns the assigned slug. Stored files are removed
// when the insert fails.
func (s *Service) Create(ctx context.Context, req *CreateRequest, cover *multipart.FileHeader, images []*multipart.FileHeader) (string, error) {
	validator.TrimFields(req)
	req.Normalize()
	if err := validator.First(req); err != nil {
		return "", err
	}
	base := slug.Make(req.Title)
	if base == "" {
		return "", ErrEmptySlug
	}
	if len(images) > storage.MaxBatch {
		return "", validator.Invalid("images", "at most %d images are allowed", storage.MaxBatch)
	}

	files := make([]*multipart.FileHeader, 0, len(images)+1)
	if cover != nil {
		files = append(files, cover)
	}
	files = append(files, images...)

	p := req.toProperty(base)
	_, err := storage.WithFiles(ctx, s.store, files, func(names []string) error {
		if cover != nil {
			p.Image = &names[0]
			names = names[1:]
		}
		return s.repo.Create(ctx, p, names)
	})
	if err != nil {
		return "", err
	}
	return p.Slug, nil
}

// Like increments the like counter and returns the updated property.
func (s *Service) Like(ctx context.Context, slug string) (*domain.Property, error) {
	return s.repo.IncrementLikes(ctx, slug)
}

func (s *Service) ListTypes(ctx context.Context) ([]domain.PropertyType, error) {
	return s.repo.ListTypes(ctx)
}
