package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConsumableCreateRequestDTO struct {
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Cost     decimal.Decimal `json:"cost"`
	Metadata map[string]any  `json:"meta_data"`
}

type ConsumableUpdateRequestDTO struct {
	Name     string           `json:"name" validate:"omitempty,min=1,max=100"`
	Cost     *decimal.Decimal `json:"cost"`
	Metadata map[string]any   `json:"meta_data"`
}

type ConsumableResponseDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	Metadata  map[string]any  `json:"meta_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ConsumablesListResponseDTO struct {
	Consumables []ConsumableResponseDTO `json:"consumables"`
	Total       int                     `json:"total"`
}

type PurchasableCreateRequestDTO struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	Price        decimal.Decimal `json:"price"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Metadata     map[string]any  `json:"meta_data"`
}

type PurchasableUpdateRequestDTO struct {
	Name         string           `json:"name" validate:"omitempty,min=1,max=100"`
	Price        *decimal.Decimal `json:"price"`
	CreditAmount *decimal.Decimal `json:"credit_amount"`
	Metadata     map[string]any   `json:"meta_data"`
}

type PurchasableResponseDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Metadata     map[string]any  `json:"meta_data,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type PurchasablesListResponseDTO struct {
	Purchasables []PurchasableResponseDTO `json:"purchasables"`
	Total        int                      `json:"total"`
}

type ApplyRequestDTO struct {
	UserID      string `json:"user_id" validate:"required"`
	Count       int    `json:"count" validate:"omitempty,min=1"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

type ApplyUserDTO struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Credit decimal.Decimal `json:"credit"`
}

type ApplyConsumableDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Cost  decimal.Decimal `json:"cost"`
	Count int             `json:"count"`
}

type ApplyPurchasableDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Count        int             `json:"count"`
}

type ApplyEventDTO struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
}

type ApplyConsumableResponseDTO struct {
	Success    bool               `json:"success"`
	User       ApplyUserDTO       `json:"user"`
	Consumable ApplyConsumableDTO `json:"consumable"`
	Event      ApplyEventDTO      `json:"event"`
}

type ApplyPurchasableResponseDTO struct {
	Success     bool                `json:"success"`
	User        ApplyUserDTO        `json:"user"`
	Purchasable ApplyPurchasableDTO `json:"purchasable"`
	Event       ApplyEventDTO       `json:"event"`
}
