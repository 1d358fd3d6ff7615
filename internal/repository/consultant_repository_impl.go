package repository

import (
	"errors"

	"go-consultation-booking/internal/domain/entity"
	domainRepo "go-consultation-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultantRepository struct{}

func NewConsultantRepository() domainRepo.ConsultantRepository {
	return &consultantRepository{}
}

func (r *consultantRepository) Create(db *gorm.DB, consultant *entity.Consultant) error {
	return db.Create(consultant).Error
}

func (r *consultantRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultant, error) {
	var consultant entity.Consultant
	err := db.Where("id = ?", id).First(&consultant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultant, nil
}

func (r *consultantRepository) FindByName(db *gorm.DB, name string) (*entity.Consultant, error) {
	var consultant entity.Consultant
	err := db.Where("name = ?", name).First(&consultant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultant, nil
}

// FindByNames returns the consultants whose names are in the given list.
// Unknown names are simply absent from the result; the caller decides
// whether that is an error.
func (r *consultantRepository) FindByNames(db *gorm.DB, names []string) ([]entity.Consultant, error) {
	var consultants []entity.Consultant
	err := db.Where("name IN ?", names).Order("name ASC").Find(&consultants).Error
	if err != nil {
		return nil, err
	}
	return consultants, nil
}

func (r *consultantRepository) FindAll(db *gorm.DB) ([]entity.Consultant, error) {
	var consultants []entity.Consultant
	err := db.Order("name ASC").Find(&consultants).Error
	if err != nil {
		return nil, err
	}
	return consultants, nil
}

func (r *consultantRepository) FindAllActive(db *gorm.DB) ([]entity.Consultant, error) {
	var consultants []entity.Consultant
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&consultants).Error
	if err != nil {
		return nil, err
	}
	return consultants, nil
}

func (r *consultantRepository) Update(db *gorm.DB, consultant *entity.Consultant) error {
	return db.Omit("Slots").Save(consultant).Error
}

func (r *consultantRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Select("Slots").Where("id = ?", id).Delete(&entity.Consultant{ID: id})
	return affected.RowsAffected, affected.Error
}
