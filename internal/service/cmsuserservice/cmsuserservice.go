package cmsuserservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
)

//go:generate mockgen -source=cmsuserservice.go -destination=mocks.go -package=cmsuserservice

type Repo interface {
	Create(ctx context.Context, user *domain.CMSUser) (*domain.CMSUser, error)
	FindByMobile(ctx context.Context, mobile string) (*domain.CMSUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.CMSUser, error)
	List(ctx context.Context, skip, limit int) ([]domain.CMSUser, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, user *domain.CMSUser) (*domain.CMSUser, error)
	Delete(ctx context.Context, mobile string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, mobile, email, name string) (*domain.CMSUser, error) {
	existing, err := s.repo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateMobile
	}
	existing, err = s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	user := &domain.CMSUser{
		Mobile: mobile,
		Email:  email,
		Name:   name,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create cms user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetByMobile(ctx context.Context, mobile string) (*domain.CMSUser, error) {
	user, err := s.repo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCMSUserNotFound
	}
	return user, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.CMSUser, int, error) {
	users, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *Service) Update(ctx context.Context, mobile, email, name string) (*domain.CMSUser, error) {
	user, err := s.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateEmail
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		zap.L().Error("can't update cms user", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, mobile string) error {
	if _, err := s.GetByMobile(ctx, mobile); err != nil {
		return err
	}
	return s.repo.Delete(ctx, mobile)
}
