package dto

import "time"

type CMSUserCreateRequestDTO struct {
	Mobile string `json:"mobile" validate:"required,min=5,max=20"`
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required,min=1,max=100"`
}

type CMSUserUpdateRequestDTO struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name" validate:"omitempty,min=1,max=100"`
}

type CMSUserResponseDTO struct {
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CMSUsersListResponseDTO struct {
	Users []CMSUserResponseDTO `json:"users"`
	Total int                  `json:"total"`
}
