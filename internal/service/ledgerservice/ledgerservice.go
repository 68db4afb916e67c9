package ledgerservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mocks.go -package=ledgerservice

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.AgentUser, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.AgentUser, error)
	UpdateCredit(ctx context.Context, id string, credit decimal.Decimal) error
}

type EventRepo interface {
	Insert(ctx context.Context, event *domain.CreditEvent) (*domain.CreditEvent, error)
	FindByID(ctx context.Context, id string) (*domain.CreditEvent, error)
	FindRefundOf(ctx context.Context, originalEventID string) (*domain.CreditEvent, error)
}

type ConsumableRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Consumable, error)
}

type PurchasableRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Purchasable, error)
}

var ErrInvalidCount = errors.New("count must be a positive integer")

// lockNotAvailable is the SQLSTATE raised when lock_timeout expires.
const lockNotAvailable = "55P03"

// Service owns every balance mutation. The user's credit column is a cached
// projection of the agent_event log; both are always written in one
// transaction, with the user row locked for the read-modify-write.
type Service struct {
	userRepo        UserRepo
	eventRepo       EventRepo
	consumableRepo  ConsumableRepo
	purchasableRepo PurchasableRepo
	txManager       pg.TXManager
	allowOverdraft  bool

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
}

func New(userRepo UserRepo, eventRepo EventRepo, consumableRepo ConsumableRepo, purchasableRepo PurchasableRepo, txManager pg.TXManager, allowOverdraft bool) *Service {
	return &Service{
		userRepo:        userRepo,
		eventRepo:       eventRepo,
		consumableRepo:  consumableRepo,
		purchasableRepo: purchasableRepo,
		txManager:       txManager,
		allowOverdraft:  allowOverdraft,
		entropy:         ulid.Monotonic(rand.Reader, 0),
	}
}

// newEventID returns a ULID; monotonic entropy keeps ids of events created in
// the same millisecond in creation order.
func (s *Service) newEventID() string {
	s.entropyMu.Lock()
	defer s.entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}

func mapLockErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == lockNotAvailable {
		return domain.ErrLockTimeout
	}
	return err
}

// ApplyDelta atomically adds a signed amount to the user's balance and appends
// the corresponding credit event. This primitive enforces no balance floor;
// callers that represent consumption go through the floor policy instead.
func (s *Service) ApplyDelta(ctx context.Context, userID string, amount decimal.Decimal, eventType string, payload domain.EventPayload, description string, createdBy *string) (*domain.CreditEvent, error) {
	event, _, err := s.applyDelta(ctx, userID, amount, eventType, payload, description, createdBy, false)
	return event, err
}

func (s *Service) applyDelta(ctx context.Context, userID string, amount decimal.Decimal, eventType string, payload domain.EventPayload, description string, createdBy *string, enforceFloor bool) (*domain.CreditEvent, *domain.AgentUser, error) {
	amount = amount.Round(2)

	var (
		event *domain.CreditEvent
		user  *domain.AgentUser
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		previousBalance := user.Credit
		newBalance := previousBalance.Add(amount)

		if enforceFloor && !s.allowOverdraft && amount.IsNegative() && newBalance.IsNegative() {
			return domain.ErrInsufficientCredit
		}

		if err := s.userRepo.UpdateCredit(ctx, userID, newBalance); err != nil {
			return err
		}

		payload.Amount = amount
		payload.PreviousBalance = previousBalance
		payload.NewBalance = newBalance

		event = &domain.CreditEvent{
			ID:          s.newEventID(),
			EventType:   eventType,
			TargetID:    userID,
			Payload:     payload,
			Description: description,
			CreatedBy:   createdBy,
		}
		if _, err := s.eventRepo.Insert(ctx, event); err != nil {
			return err
		}

		user.Credit = newBalance
		return nil
	})
	if err != nil {
		err = mapLockErr(err)
		if !errors.Is(err, domain.ErrUserNotFound) && !errors.Is(err, domain.ErrInsufficientCredit) {
			zap.L().Error("apply delta failed",
				zap.String("user_id", userID),
				zap.String("amount", amount.String()),
				zap.Error(err))
		}
		return nil, nil, err
	}
	return event, user, nil
}

// AddCredit records a manual balance adjustment initiated by an admin.
func (s *Service) AddCredit(ctx context.Context, userID string, amount decimal.Decimal, description string, createdBy *string) (*domain.CreditEvent, error) {
	event, _, err := s.applyDelta(ctx, userID, amount, domain.EventTypeCredit, domain.EventPayload{}, description, createdBy, true)
	return event, err
}

type ConsumableApplication struct {
	User       *domain.AgentUser
	Consumable *domain.Consumable
	Count      int
	Event      *domain.CreditEvent
}

// ApplyConsumable spends credit: delta = -cost * count. The consumable's name
// and count are denormalized into the event payload, so later catalog edits
// never rewrite history.
func (s *Service) ApplyConsumable(ctx context.Context, consumableID, userID string, count int, description string, createdBy *string) (*ConsumableApplication, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	consumable, err := s.consumableRepo.FindByID(ctx, consumableID)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, domain.ErrConsumableNotFound
	}

	delta := consumable.Cost.Mul(decimal.NewFromInt(int64(count))).Neg()
	if description == "" {
		description = applyDescription(count, consumable.Name)
	}
	payload := domain.EventPayload{
		Count:          count,
		ConsumableName: consumable.Name,
	}

	event, user, err := s.applyDelta(ctx, userID, delta, domain.EventTypeCredit, payload, description, createdBy, true)
	if err != nil {
		return nil, err
	}
	return &ConsumableApplication{
		User:       user,
		Consumable: consumable,
		Count:      count,
		Event:      event,
	}, nil
}

type PurchasableApplication struct {
	User        *domain.AgentUser
	Purchasable *domain.Purchasable
	Count       int
	Event       *domain.CreditEvent
}

// ApplyPurchasable grants credit: delta = credit_amount * count.
func (s *Service) ApplyPurchasable(ctx context.Context, purchasableID, userID string, count int, description string, createdBy *string) (*PurchasableApplication, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	purchasable, err := s.purchasableRepo.FindByID(ctx, purchasableID)
	if err != nil {
		return nil, err
	}
	if purchasable == nil {
		return nil, domain.ErrPurchasableNotFound
	}

	delta := purchasable.CreditAmount.Mul(decimal.NewFromInt(int64(count)))
	if description == "" {
		description = applyDescription(count, purchasable.Name)
	}
	payload := domain.EventPayload{
		Count:           count,
		PurchasableName: purchasable.Name,
	}

	event, user, err := s.applyDelta(ctx, userID, delta, domain.EventTypeCredit, payload, description, createdBy, false)
	if err != nil {
		return nil, err
	}
	return &PurchasableApplication{
		User:        user,
		Purchasable: purchasable,
		Count:       count,
		Event:       event,
	}, nil
}

// Refund reverses a prior credit event: the stored event total is applied with
// inverted sign and the new event links back through refund_event_id. A second
// refund of the same event is rejected. With dryRun the same existence checks
// run but nothing is written.
func (s *Service) Refund(ctx context.Context, originalEventID, userID string, dryRun bool, createdBy *string) (*domain.CreditEvent, error) {
	original, err := s.eventRepo.FindByID(ctx, originalEventID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrEventNotFound
	}

	if dryRun {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		if refund, err := s.eventRepo.FindRefundOf(ctx, originalEventID); err != nil {
			return nil, err
		} else if refund != nil {
			return nil, domain.ErrAlreadyRefunded
		}
		return nil, nil
	}

	var event *domain.CreditEvent
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Lock the user row first so concurrent refunds of the same event
		// serialize before the double-refund check.
		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		refund, err := s.eventRepo.FindRefundOf(ctx, originalEventID)
		if err != nil {
			return err
		}
		if refund != nil {
			return domain.ErrAlreadyRefunded
		}

		amount := original.Payload.Amount.Neg()
		payload := domain.EventPayload{
			Count:           original.Payload.Count,
			ConsumableName:  original.Payload.ConsumableName,
			PurchasableName: original.Payload.PurchasableName,
			RefundEventID:   original.ID,
		}
		description := fmt.Sprintf("Refund for event %s", original.ID)

		// A refund may legitimately take the balance negative when the
		// granted credit was already spent, so the floor is not enforced.
		event, _, err = s.applyDelta(ctx, userID, amount, domain.EventTypeRefund, payload, description, createdBy, false)
		return err
	})
	if err != nil {
		return nil, mapLockErr(err)
	}
	return event, nil
}

func applyDescription(count int, name string) string {
	suffix := ""
	if count > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("Applied %d %s%s", count, name, suffix)
}
