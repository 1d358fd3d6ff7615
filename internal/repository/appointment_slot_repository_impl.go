package repository

import (
	"errors"
	"time"

	"go-consultation-booking/internal/domain/entity"
	domainRepo "go-consultation-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentSlotRepository struct{}

func NewAppointmentSlotRepository() domainRepo.AppointmentSlotRepository {
	return &appointmentSlotRepository{}
}

func (r *appointmentSlotRepository) Create(db *gorm.DB, slot *entity.AppointmentSlot) error {
	return db.Create(slot).Error
}

func (r *appointmentSlotRepository) FindByID(db *gorm.DB, id int) (*entity.AppointmentSlot, error) {
	var slot entity.AppointmentSlot
	err := db.Preload("Consultants").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// FindByIDs returns the slots that exist among the given ids. Missing ids are
// simply absent from the result, never an error.
func (r *appointmentSlotRepository) FindByIDs(db *gorm.DB, ids []int) ([]entity.AppointmentSlot, error) {
	var slots []entity.AppointmentSlot
	err := db.Preload("Consultants").
		Where("id IN ?", ids).
		Order("slot_date ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// FindAll returns persisted slots matching the filter. Absent filter fields
// match everything; provided fields are combined with AND.
func (r *appointmentSlotRepository) FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.AppointmentSlot, error) {
	var slots []entity.AppointmentSlot
	query := db.Model(&entity.AppointmentSlot{})

	if filter != nil {
		if filter.Date != "" {
			query = query.Where("appointment_slots.slot_date = ?", filter.Date)
		}
		if filter.Consultant != "" {
			query = query.
				Joins("JOIN appointment_slot_consultants ON appointment_slot_consultants.appointment_slot_id = appointment_slots.id").
				Joins("JOIN consultants ON consultants.id = appointment_slot_consultants.consultant_id").
				Where("consultants.name = ?", filter.Consultant)
		}
		if filter.Query != "" {
			pattern := "%" + filter.Query + "%"
			query = query.Where(
				db.Where("to_char(appointment_slots.slot_date, 'YYYY-MM-DD') ILIKE ?", pattern).
					Or("appointment_slots.start_time::text ILIKE ?", pattern).
					Or("appointment_slots.end_time::text ILIKE ?", pattern).
					Or("EXISTS (SELECT 1 FROM appointment_slot_consultants asc2 JOIN consultants c2 ON c2.id = asc2.consultant_id WHERE asc2.appointment_slot_id = appointment_slots.id AND c2.name ILIKE ?)", pattern),
			)
		}
	}

	err := query.
		Distinct().
		Preload("Consultants").
		Order("slot_date ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *appointmentSlotRepository) FindByDateAndStart(db *gorm.DB, date time.Time, startTime string) (*entity.AppointmentSlot, error) {
	var slot entity.AppointmentSlot
	err := db.Where("slot_date = ? AND start_time = ?", date, startTime).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *appointmentSlotRepository) Update(db *gorm.DB, slot *entity.AppointmentSlot) error {
	return db.Omit("Consultants").Save(slot).Error
}

// ReplaceConsultants sets the slot's consultant association to exactly the
// given set.
func (r *appointmentSlotRepository) ReplaceConsultants(db *gorm.DB, slot *entity.AppointmentSlot, consultants []entity.Consultant) error {
	if err := db.Model(slot).Association("Consultants").Replace(consultants); err != nil {
		return err
	}
	slot.Consultants = consultants
	return nil
}

func (r *appointmentSlotRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Select("Consultants").Where("id = ?", id).Delete(&entity.AppointmentSlot{ID: id})
	return affected.RowsAffected, affected.Error
}

// DeleteMany removes the given slots in one statement. Ids that do not exist
// are tolerated and simply do not count towards the result.
func (r *appointmentSlotRepository) DeleteMany(db *gorm.DB, ids []int) (int64, error) {
	if err := db.Exec("DELETE FROM appointment_slot_consultants WHERE appointment_slot_id IN ?", ids).Error; err != nil {
		return 0, err
	}
	affected := db.Where("id IN ?", ids).Delete(&entity.AppointmentSlot{})
	return affected.RowsAffected, affected.Error
}
