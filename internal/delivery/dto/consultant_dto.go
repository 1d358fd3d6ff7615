package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConsultantRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Specialty string `json:"specialty" validate:"omitempty,max=255"`
}

type UpdateConsultantRequest struct {
	Name      string `json:"name" validate:"omitempty,max=255"`
	Specialty string `json:"specialty" validate:"omitempty,max=255"`
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ConsultantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ConsultantListResponse struct {
	Consultants []ConsultantResponse `json:"consultants"`
	Total       int                  `json:"total"`
}
