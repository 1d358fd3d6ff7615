package dto

import "github.com/google/uuid"

// Request DTOs

type BreakRequest struct {
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
}

type CreateSessionRequest struct {
	StartDate      string         `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate        string         `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
	StartTime      string         `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime        string         `json:"end_time" validate:"required"`   // Format: HH:MM
	SessionMinutes int            `json:"session_minutes" validate:"required,min=1"`
	GapMinutes     int            `json:"gap_minutes" validate:"min=0"`
	Breaks         []BreakRequest `json:"breaks" validate:"omitempty,dive"`
	// Consultants restricts the roster for this session; empty means every
	// active consultant.
	Consultants []string `json:"consultants" validate:"omitempty,dive,required"`
}

type ToggleAvailabilityRequest struct {
	Consultant string `json:"consultant" validate:"required"`
	Date       string `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime  string `json:"start_time" validate:"required"` // Format: HH:MM
}

type SessionFilterRequest struct {
	Date       string `json:"date" validate:"omitempty"`
	Consultant string `json:"consultant" validate:"omitempty"`
	Query      string `json:"query" validate:"omitempty"`
}

type SessionBulkEditRequest struct {
	Filter      SessionFilterRequest `json:"filter"`
	Action      string               `json:"action" validate:"required,oneof=add_consultants remove_consultants replace_consultants"`
	Consultants []string             `json:"consultants" validate:"required,min=1,dive,required"`
}

// Response DTOs

type GeneratedAppointmentResponse struct {
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Consultants []string `json:"consultants"`
}

type SessionResponse struct {
	SessionID    uuid.UUID                      `json:"session_id"`
	StartDate    string                         `json:"start_date"`
	EndDate      string                         `json:"end_date"`
	Roster       []string                       `json:"roster"`
	Appointments []GeneratedAppointmentResponse `json:"appointments"`
	Total        int                            `json:"total"`
}

type SessionBulkEditResponse struct {
	Modified     int                            `json:"modified"`
	Appointments []GeneratedAppointmentResponse `json:"appointments"`
	Total        int                            `json:"total"`
}

type SaveSummaryResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
