package entity

import (
	"time"

	"github.com/google/uuid"
)

// Consultant is one member of the bookable roster. The roster is administered
// externally; the scheduling engine only references consultants by name.
type Consultant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Specialty string    `gorm:"type:varchar(255)" json:"specialty,omitempty"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Slots []AppointmentSlot `gorm:"many2many:appointment_slot_consultants" json:"slots,omitempty"`
}

func (Consultant) TableName() string {
	return "consultants"
}
