package entity

import "time"

// AppointmentSlot is a persisted bookable slot with its assigned consultants.
// The (slot_date, start_time) pair is the duplicate-detection key used by the
// batch save: a second slot on the same date and start time is skipped.
type AppointmentSlot struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SlotDate  time.Time `gorm:"type:date;not null;index;uniqueIndex:idx_slot_date_start" json:"slot_date"`
	StartTime string    `gorm:"type:time;not null;uniqueIndex:idx_slot_date_start" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Consultants []Consultant `gorm:"many2many:appointment_slot_consultants" json:"consultants,omitempty"`
}

func (AppointmentSlot) TableName() string {
	return "appointment_slots"
}

// ConsultantNames returns the assigned consultant names in association order.
func (s *AppointmentSlot) ConsultantNames() []string {
	names := make([]string, len(s.Consultants))
	for i, c := range s.Consultants {
		names[i] = c.Name
	}
	return names
}
