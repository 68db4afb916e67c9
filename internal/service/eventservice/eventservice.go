package eventservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
	eventrepo "github.com/nexilab/agent-credit/internal/repo/event-repo"
)

//go:generate mockgen -source=eventservice.go -destination=mocks.go -package=eventservice

type Repo interface {
	List(ctx context.Context, filter eventrepo.Filter, skip, limit int) ([]domain.CreditEvent, error)
	Count(ctx context.Context, filter eventrepo.Filter) (int, error)
	FindByID(ctx context.Context, id string) (*domain.CreditEvent, error)
}

type UserRepo interface {
	FindByMobile(ctx context.Context, mobile string) (*domain.AgentUser, error)
}

const (
	defaultLimit = 100
	maxLimit     = 100
)

// Service is the read-only side of the ledger. Nothing here ever mutates an
// event.
type Service struct {
	repo     Repo
	userRepo UserRepo
}

func New(repo Repo, userRepo UserRepo) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
	}
}

func clampWindow(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// List returns a page of events newest first plus the total matching the
// filter regardless of the window.
func (s *Service) List(ctx context.Context, eventType, targetID string, skip, limit int) ([]domain.CreditEvent, int, error) {
	skip, limit = clampWindow(skip, limit)
	filter := eventrepo.Filter{EventType: eventType, TargetID: targetID}

	events, err := s.repo.List(ctx, filter, skip, limit)
	if err != nil {
		zap.L().Error("failed to list events", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		zap.L().Error("failed to count events", zap.Error(err))
		return nil, 0, err
	}
	return events, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.CreditEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get event", zap.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// UserHistory lists the credit history of the user addressed by mobile number.
func (s *Service) UserHistory(ctx context.Context, mobile string, skip, limit int) ([]domain.CreditEvent, int, error) {
	user, err := s.userRepo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, domain.ErrUserNotFound
	}
	return s.List(ctx, "", user.ID, skip, limit)
}
