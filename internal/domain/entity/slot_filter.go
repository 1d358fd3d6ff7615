package entity

// SlotFilter is a domain-level filter for querying persisted slots.
// Empty fields are absent and match everything; provided fields combine
// with AND. Used by the repository layer to avoid coupling with delivery
// DTOs.
type SlotFilter struct {
	Date       string // Format: YYYY-MM-DD, exact match
	Consultant string // consultant name, set membership
	Query      string // free-text substring over date/time/consultant (ILIKE)
}
