package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventPayloadDTO struct {
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Count           int             `json:"count,omitempty"`
	ConsumableName  string          `json:"consumable_name,omitempty"`
	PurchasableName string          `json:"purchasable_name,omitempty"`
	RefundEventID   string          `json:"refund_event_id,omitempty"`
}

type EventResponseDTO struct {
	ID          string          `json:"id"`
	EventType   string          `json:"event_type"`
	TargetID    string          `json:"target_id"`
	EventData   EventPayloadDTO `json:"event_data"`
	Description string          `json:"description"`
	CreatedBy   *string         `json:"created_by"`
	Timestamp   time.Time       `json:"timestamp"`
}

type EventsListResponseDTO struct {
	Events []EventResponseDTO `json:"events"`
	Total  int                `json:"total"`
}

type RefundRequestDTO struct {
	UserID string `json:"user_id" validate:"required"`
	DryRun bool   `json:"dry_run"`
}

type RefundResponseDTO struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Event   *EventResponseDTO `json:"event,omitempty"`
}
