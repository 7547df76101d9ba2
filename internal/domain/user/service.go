package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"boolbnb/internal/domain"
	"boolbnb/internal/pkg/validator"
)

type Service struct {
	repo *Repository
	cost int
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.User, error) {
	validator.TrimFields(req)
	req.Email = strings.ToLower(req.Email)
	if err := validator.First(req); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password, s.cost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		UserType:     domain.UserType(req.UserType),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*domain.User, error) {
	validator.TrimFields(req)
	req.Email = strings.ToLower(req.Email)
	if err := validator.First(req); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name = req.Name
	u.Email = req.Email
	u.UserType = domain.UserType(req.UserType)
	if req.Password != "" {
		if u.PasswordHash, err = HashPassword(req.Password, s.cost); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
