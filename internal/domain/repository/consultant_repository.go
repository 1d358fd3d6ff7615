package repository

import (
	"go-consultation-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultantRepository interface {
	Create(db *gorm.DB, consultant *entity.Consultant) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultant, error)
	FindByName(db *gorm.DB, name string) (*entity.Consultant, error)
	FindByNames(db *gorm.DB, names []string) ([]entity.Consultant, error)
	FindAll(db *gorm.DB) ([]entity.Consultant, error)
	FindAllActive(db *gorm.DB) ([]entity.Consultant, error)
	Update(db *gorm.DB, consultant *entity.Consultant) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
