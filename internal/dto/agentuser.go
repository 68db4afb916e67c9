package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AgentUserCreateRequestDTO struct {
	Mobile string          `json:"mobile" validate:"required,min=5,max=20"`
	Email  string          `json:"email" validate:"required,email"`
	Name   string          `json:"name" validate:"required,min=1,max=100"`
	Credit decimal.Decimal `json:"credit"`
}

type AgentUserUpdateRequestDTO struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name" validate:"omitempty,min=1,max=100"`
}

type AgentUserResponseDTO struct {
	ID        string          `json:"id"`
	Mobile    string          `json:"mobile"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Credit    decimal.Decimal `json:"credit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AgentUsersListResponseDTO struct {
	Users []AgentUserResponseDTO `json:"users"`
	Total int                    `json:"total"`
}

type CreditRequestDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,min=1,max=255"`
}
