package dto

import "time"

// Request DTOs

// SlotFilterRequest is bound from query parameters; every field is optional
// and absent fields match everything.
type SlotFilterRequest struct {
	Date       string `json:"date"`
	Consultant string `json:"consultant"`
	Query      string `json:"q"`
}

type UpdateSlotRequest struct {
	SlotDate    string   `json:"slot_date" validate:"required"`  // Format: YYYY-MM-DD
	StartTime   string   `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime     string   `json:"end_time" validate:"required"`   // Format: HH:MM
	Consultants []string `json:"consultants" validate:"required,min=1,dive,required"`
}

type BulkDeleteRequest struct {
	IDs []int `json:"ids" validate:"required,min=1"`
}

type BulkEditRequest struct {
	SlotIDs     []int    `json:"slot_ids" validate:"required,min=1"`
	Action      string   `json:"action" validate:"required,oneof=add_consultants remove_consultants replace_consultants"`
	Consultants []string `json:"consultants" validate:"required,min=1,dive,required"`
}

// Response DTOs

type SlotResponse struct {
	ID          int       `json:"id"`
	SlotDate    string    `json:"slot_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Consultants []string  `json:"consultants"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

type BulkEditResponse struct {
	Modified int            `json:"modified"`
	Slots    []SlotResponse `json:"slots"`
}
