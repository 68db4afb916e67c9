package catalogservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
)

//go:generate mockgen -source=catalogservice.go -destination=mocks.go -package=catalogservice

type ConsumableRepo interface {
	Create(ctx context.Context, c *domain.Consumable) (*domain.Consumable, error)
	FindByID(ctx context.Context, id string) (*domain.Consumable, error)
	List(ctx context.Context, skip, limit int) ([]domain.Consumable, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, c *domain.Consumable) (*domain.Consumable, error)
	Delete(ctx context.Context, id string) error
}

type PurchasableRepo interface {
	Create(ctx context.Context, p *domain.Purchasable) (*domain.Purchasable, error)
	FindByID(ctx context.Context, id string) (*domain.Purchasable, error)
	List(ctx context.Context, skip, limit int) ([]domain.Purchasable, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, p *domain.Purchasable) (*domain.Purchasable, error)
	Delete(ctx context.Context, id string) error
}

// Service manages the catalog. Edits here never touch past credit events:
// every apply snapshots cost and name into the event payload.
type Service struct {
	consumables  ConsumableRepo
	purchasables PurchasableRepo
}

func New(consumables ConsumableRepo, purchasables PurchasableRepo) *Service {
	return &Service{
		consumables:  consumables,
		purchasables: purchasables,
	}
}

func (s *Service) CreateConsumable(ctx context.Context, name string, cost decimal.Decimal, metadata map[string]any) (*domain.Consumable, error) {
	consumable := &domain.Consumable{
		ID:       uuid.NewString(),
		Name:     name,
		Cost:     cost.Round(2),
		Metadata: metadata,
	}
	created, err := s.consumables.Create(ctx, consumable)
	if err != nil {
		zap.L().Error("can't create consumable", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetConsumable(ctx context.Context, id string) (*domain.Consumable, error) {
	consumable, err := s.consumables.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, domain.ErrConsumableNotFound
	}
	return consumable, nil
}

func (s *Service) ListConsumables(ctx context.Context, skip, limit int) ([]domain.Consumable, int, error) {
	consumables, err := s.consumables.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.consumables.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return consumables, total, nil
}

func (s *Service) UpdateConsumable(ctx context.Context, id, name string, cost *decimal.Decimal, metadata map[string]any) (*domain.Consumable, error) {
	consumable, err := s.GetConsumable(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		consumable.Name = name
	}
	if cost != nil {
		consumable.Cost = cost.Round(2)
	}
	if metadata != nil {
		consumable.Metadata = metadata
	}
	updated, err := s.consumables.Update(ctx, consumable)
	if err != nil {
		zap.L().Error("can't update consumable", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteConsumable(ctx context.Context, id string) error {
	if _, err := s.GetConsumable(ctx, id); err != nil {
		return err
	}
	return s.consumables.Delete(ctx, id)
}

func (s *Service) CreatePurchasable(ctx context.Context, name string, price, creditAmount decimal.Decimal, metadata map[string]any) (*domain.Purchasable, error) {
	purchasable := &domain.Purchasable{
		ID:           uuid.NewString(),
		Name:         name,
		Price:        price.Round(2),
		CreditAmount: creditAmount.Round(2),
		Metadata:     metadata,
	}
	created, err := s.purchasables.Create(ctx, purchasable)
	if err != nil {
		zap.L().Error("can't create purchasable", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetPurchasable(ctx context.Context, id string) (*domain.Purchasable, error) {
	purchasable, err := s.purchasables.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchasable == nil {
		return nil, domain.ErrPurchasableNotFound
	}
	return purchasable, nil
}

func (s *Service) ListPurchasables(ctx context.Context, skip, limit int) ([]domain.Purchasable, int, error) {
	purchasables, err := s.purchasables.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.purchasables.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return purchasables, total, nil
}

func (s *Service) UpdatePurchasable(ctx context.Context, id, name string, price, creditAmount *decimal.Decimal, metadata map[string]any) (*domain.Purchasable, error) {
	purchasable, err := s.GetPurchasable(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		purchasable.Name = name
	}
	if price != nil {
		purchasable.Price = price.Round(2)
	}
	if creditAmount != nil {
		purchasable.CreditAmount = creditAmount.Round(2)
	}
	if metadata != nil {
		purchasable.Metadata = metadata
	}
	updated, err := s.purchasables.Update(ctx, purchasable)
	if err != nil {
		zap.L().Error("can't update purchasable", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeletePurchasable(ctx context.Context, id string) error {
	if _, err := s.GetPurchasable(ctx, id); err != nil {
		return err
	}
	return s.purchasables.Delete(ctx, id)
}
