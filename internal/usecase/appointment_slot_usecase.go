package usecase

import (
	"context"
	"errors"
	"time"

	"go-consultation-booking/internal/converter"
	"go-consultation-booking/internal/delivery/dto"
	"go-consultation-booking/internal/domain/entity"
	"go-consultation-booking/internal/domain/repository"
	"go-consultation-booking/internal/scheduler"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound   = errors.New("slot not found")
	ErrInvalidSlotEnd = errors.New("slot end time must be after start time")
)

type AppointmentSlotUsecase interface {
	ListSlots(ctx context.Context, filter *dto.SlotFilterRequest) (*dto.SlotListResponse, error)
	GetSlot(ctx context.Context, slotID int) (*dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, slotID int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, slotID int) error
	BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error)
	BulkEdit(ctx context.Context, req *dto.BulkEditRequest) (*dto.BulkEditResponse, error)
}

type appointmentSlotUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	slotRepo       repository.AppointmentSlotRepository
	consultantRepo repository.ConsultantRepository
}

func NewAppointmentSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.AppointmentSlotRepository,
	consultantRepo repository.ConsultantRepository,
) AppointmentSlotUsecase {
	return &appointmentSlotUsecase{
		db:             db,
		log:            log,
		slotRepo:       slotRepo,
		consultantRepo: consultantRepo,
	}
}

func (u *appointmentSlotUsecase) ListSlots(ctx context.Context, filter *dto.SlotFilterRequest) (*dto.SlotListResponse, error) {
	domainFilter := &entity.SlotFilter{}
	if filter != nil {
		domainFilter.Date = filter.Date
		domainFilter.Consultant = filter.Consultant
		domainFilter.Query = filter.Query
	}

	slots, err := u.slotRepo.FindAll(u.db.WithContext(ctx), domainFilter)
	if err != nil {
		u.log.Warnf("Failed to list slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

func (u *appointmentSlotUsecase) GetSlot(ctx context.Context, slotID int) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	return converter.SlotToResponse(slot), nil
}

// UpdateSlot fully replaces one persisted slot. All validation happens
// locally before any write: missing fields and empty consultant sets are
// rejected without touching the store.
func (u *appointmentSlotUsecase) UpdateSlot(ctx context.Context, slotID int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	slotDate, err := time.Parse(scheduler.DateFormat, req.SlotDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	startMin, err := scheduler.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	endMin, err := scheduler.ParseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if endMin <= startMin {
		return nil, ErrInvalidSlotEnd
	}

	var response *dto.SlotResponse
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot, err := u.slotRepo.FindByID(tx, slotID)
		if err != nil {
			return err
		}
		if slot == nil {
			return ErrSlotNotFound
		}

		consultants, err := u.consultantRepo.FindByNames(tx, req.Consultants)
		if err != nil {
			return err
		}
		if len(consultants) != len(req.Consultants) {
			return ErrUnknownConsultant
		}

		slot.SlotDate = slotDate
		slot.StartTime = req.StartTime
		slot.EndTime = req.EndTime
		if err := u.slotRepo.Update(tx, slot); err != nil {
			return err
		}
		if err := u.slotRepo.ReplaceConsultants(tx, slot, consultants); err != nil {
			return err
		}

		response = converter.SlotToResponse(slot)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) && !errors.Is(err, ErrUnknownConsultant) {
			u.log.Warnf("Failed to update slot %d: %+v", slotID, err)
		}
		return nil, err
	}
	return response, nil
}

func (u *appointmentSlotUsecase) DeleteSlot(ctx context.Context, slotID int) error {
	affected, err := u.slotRepo.Delete(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to delete slot %d: %+v", slotID, err)
		return err
	}
	if affected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// BulkDelete removes the given slots as one batch. Ids that do not exist are
// tolerated and simply do not count towards the result.
func (u *appointmentSlotUsecase) BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	var deleted int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = u.slotRepo.DeleteMany(tx, req.IDs)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to bulk delete slots: %+v", err)
		return nil, err
	}

	u.log.Infof("Bulk delete removed %d of %d slot(s)", deleted, len(req.IDs))
	return &dto.BulkDeleteResponse{DeletedCount: deleted}, nil
}

// BulkEdit applies one action to every targeted slot in a single
// transaction, so the summary reflects the batch outcome atomically.
// Missing ids are tolerated; Modified counts only slots whose consultant
// set actually changed value.
func (u *appointmentSlotUsecase) BulkEdit(ctx context.Context, req *dto.BulkEditRequest) (*dto.BulkEditResponse, error) {
	action := scheduler.BulkAction(req.Action)
	if !action.Valid() {
		return nil, scheduler.ErrUnknownBulkAction
	}

	var response *dto.BulkEditResponse
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		consultants, err := u.consultantRepo.FindByNames(tx, req.Consultants)
		if err != nil {
			return err
		}
		if len(consultants) != len(req.Consultants) {
			return ErrUnknownConsultant
		}
		byName := make(map[string]entity.Consultant, len(consultants))
		for _, c := range consultants {
			byName[c.Name] = c
		}

		slots, err := u.slotRepo.FindByIDs(tx, req.SlotIDs)
		if err != nil {
			return err
		}

		modified := 0
		for i := range slots {
			members, changed, err := scheduler.EditMembers(slots[i].ConsultantNames(), action, req.Consultants)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}

			updated := make([]entity.Consultant, 0, len(members))
			for _, name := range members {
				if c, ok := byName[name]; ok {
					updated = append(updated, c)
				} else {
					// Surviving members outside the edit set keep their
					// existing association records.
					for _, existing := range slots[i].Consultants {
						if existing.Name == name {
							updated = append(updated, existing)
							break
						}
					}
				}
			}
			if err := u.slotRepo.ReplaceConsultants(tx, &slots[i], updated); err != nil {
				return err
			}
			modified++
		}

		response = &dto.BulkEditResponse{
			Modified: modified,
			Slots:    converter.SlotsToResponses(slots),
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUnknownConsultant) && !errors.Is(err, scheduler.ErrUnknownBulkAction) {
			u.log.Warnf("Failed to bulk edit slots: %+v", err)
		}
		return nil, err
	}

	u.log.Infof("Bulk edit %s modified %d of %d slot(s)", action, response.Modified, len(req.SlotIDs))
	return response, nil
}
