package repository

import (
	"time"

	"go-consultation-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentSlotRepository interface {
	Create(db *gorm.DB, slot *entity.AppointmentSlot) error
	FindByID(db *gorm.DB, id int) (*entity.AppointmentSlot, error)
	FindByIDs(db *gorm.DB, ids []int) ([]entity.AppointmentSlot, error)
	FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.AppointmentSlot, error)
	FindByDateAndStart(db *gorm.DB, date time.Time, startTime string) (*entity.AppointmentSlot, error)
	Update(db *gorm.DB, slot *entity.AppointmentSlot) error
	ReplaceConsultants(db *gorm.DB, slot *entity.AppointmentSlot, consultants []entity.Consultant) error
	Delete(db *gorm.DB, id int) (int64, error)
	DeleteMany(db *gorm.DB, ids []int) (int64, error)
}
