package agentuserservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
)

//go:generate mockgen -source=agentuserservice.go -destination=mocks.go -package=agentuserservice

type Repo interface {
	Create(ctx context.Context, user *domain.AgentUser) (*domain.AgentUser, error)
	FindByID(ctx context.Context, id string) (*domain.AgentUser, error)
	FindByMobile(ctx context.Context, mobile string) (*domain.AgentUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.AgentUser, error)
	List(ctx context.Context, skip, limit int) ([]domain.AgentUser, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, user *domain.AgentUser) (*domain.AgentUser, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, mobile, email, name string, credit decimal.Decimal) (*domain.AgentUser, error) {
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

	user := &domain.AgentUser{
		ID:     uuid.NewString(),
		Mobile: mobile,
		Email:  email,
		Name:   name,
		Credit: credit.Round(2),
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create agent user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("agent user created", zap.String("id", created.ID), zap.String("mobile", mobile))
	return created, nil
}

func (s *Service) GetByMobile(ctx context.Context, mobile string) (*domain.AgentUser, error) {
	user, err := s.repo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.AgentUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.AgentUser, int, error) {
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

// Update changes the mutable profile fields; empty values leave the current
// ones in place.
func (s *Service) Update(ctx context.Context, mobile, email, name string) (*domain.AgentUser, error) {
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
		zap.L().Error("can't update agent user", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete removes the user; their credit events go with them via cascade.
func (s *Service) Delete(ctx context.Context, mobile string) error {
	user, err := s.GetByMobile(ctx, mobile)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		zap.L().Error("can't delete agent user", zap.Error(err))
		return err
	}
	zap.L().Info("agent user deleted", zap.String("id", user.ID))
	return nil
}
