package usecase

import (
	"context"
	"errors"

	"go-consultation-booking/internal/converter"
	"go-consultation-booking/internal/delivery/dto"
	"go-consultation-booking/internal/domain/entity"
	"go-consultation-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultantNotFound = errors.New("consultant not found")
	ErrConsultantExists   = errors.New("consultant with this name already exists")
)

type ConsultantUsecase interface {
	CreateConsultant(ctx context.Context, req *dto.CreateConsultantRequest) (*dto.ConsultantResponse, error)
	GetConsultant(ctx context.Context, consultantID uuid.UUID) (*dto.ConsultantResponse, error)
	GetAllConsultants(ctx context.Context) (*dto.ConsultantListResponse, error)
	UpdateConsultant(ctx context.Context, consultantID uuid.UUID, req *dto.UpdateConsultantRequest) (*dto.ConsultantResponse, error)
	DeleteConsultant(ctx context.Context, consultantID uuid.UUID) error
}

type consultantUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	consultantRepo repository.ConsultantRepository
}

func NewConsultantUsecase(db *gorm.DB, log *logrus.Logger, consultantRepo repository.ConsultantRepository) ConsultantUsecase {
	return &consultantUsecase{
		db:             db,
		log:            log,
		consultantRepo: consultantRepo,
	}
}

func (u *consultantUsecase) CreateConsultant(ctx context.Context, req *dto.CreateConsultantRequest) (*dto.ConsultantResponse, error) {
	existing, err := u.consultantRepo.FindByName(u.db.WithContext(ctx), req.Name)
	if err != nil {
		u.log.Warnf("Failed to check consultant name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrConsultantExists
	}

	consultant := &entity.Consultant{
		Name:      req.Name,
		Specialty: req.Specialty,
	}
	if err := u.consultantRepo.Create(u.db.WithContext(ctx), consultant); err != nil {
		u.log.Warnf("Failed to create consultant: %+v", err)
		return nil, err
	}

	return converter.ConsultantToResponse(consultant), nil
}

func (u *consultantUsecase) GetConsultant(ctx context.Context, consultantID uuid.UUID) (*dto.ConsultantResponse, error) {
	consultant, err := u.consultantRepo.FindByID(u.db.WithContext(ctx), consultantID)
	if err != nil {
		u.log.Warnf("Failed to find consultant: %+v", err)
		return nil, err
	}
	if consultant == nil {
		return nil, ErrConsultantNotFound
	}
	return converter.ConsultantToResponse(consultant), nil
}

func (u *consultantUsecase) GetAllConsultants(ctx context.Context) (*dto.ConsultantListResponse, error) {
	consultants, err := u.consultantRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list consultants: %+v", err)
		return nil, err
	}

	return &dto.ConsultantListResponse{
		Consultants: converter.ConsultantsToResponses(consultants),
		Total:       len(consultants),
	}, nil
}

func (u *consultantUsecase) UpdateConsultant(ctx context.Context, consultantID uuid.UUID, req *dto.UpdateConsultantRequest) (*dto.ConsultantResponse, error) {
	consultant, err := u.consultantRepo.FindByID(u.db.WithContext(ctx), consultantID)
	if err != nil {
		u.log.Warnf("Failed to find consultant: %+v", err)
		return nil, err
	}
	if consultant == nil {
		return nil, ErrConsultantNotFound
	}

	if req.Name != "" && req.Name != consultant.Name {
		existing, err := u.consultantRepo.FindByName(u.db.WithContext(ctx), req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrConsultantExists
		}
		consultant.Name = req.Name
	}
	if req.Specialty != "" {
		consultant.Specialty = req.Specialty
	}
	if req.IsActive != nil {
		consultant.IsActive = req.IsActive
	}

	if err := u.consultantRepo.Update(u.db.WithContext(ctx), consultant); err != nil {
		u.log.Warnf("Failed to update consultant: %+v", err)
		return nil, err
	}

	return converter.ConsultantToResponse(consultant), nil
}

func (u *consultantUsecase) DeleteConsultant(ctx context.Context, consultantID uuid.UUID) error {
	affected, err := u.consultantRepo.Delete(u.db.WithContext(ctx), consultantID)
	if err != nil {
		u.log.Warnf("Failed to delete consultant: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrConsultantNotFound
	}
	return nil
}
