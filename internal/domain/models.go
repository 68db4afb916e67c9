package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types recorded in the agent_event log.
const (
	EventTypeCredit = "agent_credit"
	EventTypeRefund = "refund"
)

type AgentUser struct {
	ID        string          `db:"id"`
	Mobile    string          `db:"mobile"`
	Email     string          `db:"email"`
	Name      string          `db:"name"`
	Credit    decimal.Decimal `db:"credit"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// EventPayload is the structured body of a credit event. Amount is the signed
// total applied by the operation; PreviousBalance and NewBalance snapshot the
// user's credit around it, so NewBalance = PreviousBalance + Amount holds for
// every event ever written.
type EventPayload struct {
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Count           int             `json:"count,omitempty"`
	ConsumableName  string          `json:"consumable_name,omitempty"`
	PurchasableName string          `json:"purchasable_name,omitempty"`
	RefundEventID   string          `json:"refund_event_id,omitempty"`
}

// CreditEvent is an immutable ledger entry. IDs are ULIDs, so lexicographic
// order matches creation order and breaks timestamp ties.
type CreditEvent struct {
	ID          string       `db:"id"`
	EventType   string       `db:"event_type"`
	TargetID    string       `db:"target_id"`
	Payload     EventPayload `db:"event_data"`
	Description string       `db:"description"`
	CreatedBy   *string      `db:"created_by"`
	Timestamp   time.Time    `db:"timestamp"`
}

type Consumable struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Cost      decimal.Decimal `db:"cost"`
	Metadata  map[string]any  `db:"meta_data"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Purchasable struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Price        decimal.Decimal `db:"price"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	Metadata     map[string]any  `db:"meta_data"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type AdminUser struct {
	ID           string     `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	LastLogin    *time.Time `db:"last_login"`
}

type CMSUser struct {
	Mobile    string    `db:"mobile"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
