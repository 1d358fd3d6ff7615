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
	"go-consultation-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeWindow  = errors.New("window start must be before end and session duration positive")
	ErrInvalidBreakPeriod = errors.New("break start must be before break end")
	ErrEmptyRoster        = errors.New("no active consultants available")
	ErrUnknownConsultant  = errors.New("unknown consultant")
	ErrSessionNotFound    = errors.New("planner session not found")
	ErrSlotNotInSession   = errors.New("slot is not part of this session")
)

type PlannerUsecase interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
	ToggleAvailability(ctx context.Context, sessionID uuid.UUID, req *dto.ToggleAvailabilityRequest) (*dto.SessionResponse, error)
	BulkEditSession(ctx context.Context, sessionID uuid.UUID, req *dto.SessionBulkEditRequest) (*dto.SessionBulkEditResponse, error)
	SaveSession(ctx context.Context, sessionID uuid.UUID) (*dto.SaveSummaryResponse, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

type plannerUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	store          *service.PlannerStore
	slotRepo       repository.AppointmentSlotRepository
	consultantRepo repository.ConsultantRepository
}

func NewPlannerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	store *service.PlannerStore,
	slotRepo repository.AppointmentSlotRepository,
	consultantRepo repository.ConsultantRepository,
) PlannerUsecase {
	return &plannerUsecase{
		db:             db,
		log:            log,
		store:          store,
		slotRepo:       slotRepo,
		consultantRepo: consultantRepo,
	}
}

func (u *plannerUsecase) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	startDate, err := time.Parse(scheduler.DateFormat, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse(scheduler.DateFormat, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	window, err := u.parseWindow(req)
	if err != nil {
		return nil, err
	}
	breaks, err := u.parseBreaks(req.Breaks)
	if err != nil {
		return nil, err
	}

	roster, err := u.resolveRoster(req.Consultants)
	if err != nil {
		return nil, err
	}

	slots, err := scheduler.Generate(window, breaks)
	if err != nil {
		return nil, ErrInvalidTimeWindow
	}

	session := &service.PlannerSession{
		ID:        uuid.New(),
		StartDate: startDate,
		EndDate:   endDate,
		Window:    window,
		Breaks:    breaks,
		Dates:     scheduler.ExpandDates(startDate, endDate),
		Roster:    roster,
		Slots:     slots,
		Index:     scheduler.NewIndex(),
	}
	session.Rematerialize()
	u.store.Put(session)

	u.log.Infof("Planner session %s created: %d dates, %d slots/day, %d consultants",
		session.ID, len(session.Dates), len(session.Slots), len(session.Roster))

	return sessionToResponse(session), nil
}

func (u *plannerUsecase) GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	var response *dto.SessionResponse
	err := u.store.WithSession(sessionID, func(session *service.PlannerSession) error {
		response = sessionToResponse(session)
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return response, nil
}

func (u *plannerUsecase) ToggleAvailability(ctx context.Context, sessionID uuid.UUID, req *dto.ToggleAvailabilityRequest) (*dto.SessionResponse, error) {
	startMin, err := scheduler.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	var response *dto.SessionResponse
	err = u.store.WithSession(sessionID, func(session *service.PlannerSession) error {
		if !sessionHasSlot(session, req.Date, startMin) {
			return ErrSlotNotInSession
		}
		if err := session.Toggle(req.Consultant, req.Date, startMin); err != nil {
			return err
		}
		response = sessionToResponse(session)
		return nil
	})
	if err != nil {
		return nil, mapSessionError(err)
	}
	return response, nil
}

func (u *plannerUsecase) BulkEditSession(ctx context.Context, sessionID uuid.UUID, req *dto.SessionBulkEditRequest) (*dto.SessionBulkEditResponse, error) {
	filter := scheduler.SlotFilter{
		Date:       req.Filter.Date,
		Consultant: req.Filter.Consultant,
		Query:      req.Filter.Query,
	}

	var response *dto.SessionBulkEditResponse
	err := u.store.WithSession(sessionID, func(session *service.PlannerSession) error {
		summary, err := session.BulkEdit(filter, scheduler.BulkAction(req.Action), req.Consultants)
		if err != nil {
			return err
		}
		response = &dto.SessionBulkEditResponse{
			Modified:     summary.Modified,
			Appointments: converter.AppointmentsToResponses(session.Preview),
			Total:        len(session.Preview),
		}
		return nil
	})
	if err != nil {
		return nil, mapSessionError(err)
	}
	return response, nil
}

// SaveSession persists the session's materialized preview as one batch.
// Duplicate detection uses the (slot_date, start_time) key: a slot already
// persisted for that date and start is counted as skipped, which is a soft
// outcome, not an error. The batch runs in one transaction so a failure
// leaves no partial state behind.
func (u *plannerUsecase) SaveSession(ctx context.Context, sessionID uuid.UUID) (*dto.SaveSummaryResponse, error) {
	var preview []scheduler.GeneratedAppointment
	err := u.store.WithSession(sessionID, func(session *service.PlannerSession) error {
		preview = append(preview, session.Preview...)
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	summary := &dto.SaveSummaryResponse{Total: len(preview)}
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, appointment := range preview {
			date, err := time.Parse(scheduler.DateFormat, appointment.Date)
			if err != nil {
				return ErrInvalidDateFormat
			}

			startTime := scheduler.FormatClock(appointment.StartMin)
			existing, err := u.slotRepo.FindByDateAndStart(tx, date, startTime)
			if err != nil {
				return err
			}
			if existing != nil {
				summary.Skipped++
				continue
			}

			consultants, err := u.consultantRepo.FindByNames(tx, appointment.Consultants)
			if err != nil {
				return err
			}
			if len(consultants) != len(appointment.Consultants) {
				return ErrUnknownConsultant
			}

			slot := &entity.AppointmentSlot{
				SlotDate:    date,
				StartTime:   startTime,
				EndTime:     scheduler.FormatClock(appointment.EndMin),
				Consultants: consultants,
			}
			if err := u.slotRepo.Create(tx, slot); err != nil {
				return err
			}
			summary.Inserted++
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to save planner session %s: %+v", sessionID, err)
		return nil, err
	}

	u.log.Infof("Planner session %s saved: %d inserted, %d skipped of %d",
		sessionID, summary.Inserted, summary.Skipped, summary.Total)
	return summary, nil
}

func (u *plannerUsecase) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	err := u.store.WithSession(sessionID, func(*service.PlannerSession) error { return nil })
	if err != nil {
		return ErrSessionNotFound
	}
	u.store.Delete(sessionID)
	return nil
}

func (u *plannerUsecase) parseWindow(req *dto.CreateSessionRequest) (scheduler.TimeWindow, error) {
	startMin, err := scheduler.ParseClock(req.StartTime)
	if err != nil {
		return scheduler.TimeWindow{}, ErrInvalidTimeFormat
	}
	endMin, err := scheduler.ParseClock(req.EndTime)
	if err != nil {
		return scheduler.TimeWindow{}, ErrInvalidTimeFormat
	}

	window := scheduler.TimeWindow{
		StartMin:   startMin,
		EndMin:     endMin,
		SessionMin: req.SessionMinutes,
		GapMin:     req.GapMinutes,
	}
	if err := window.Validate(); err != nil {
		return scheduler.TimeWindow{}, ErrInvalidTimeWindow
	}
	return window, nil
}

func (u *plannerUsecase) parseBreaks(reqs []dto.BreakRequest) ([]scheduler.BreakPeriod, error) {
	var breaks []scheduler.BreakPeriod
	for _, b := range reqs {
		startMin, err := scheduler.ParseClock(b.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		endMin, err := scheduler.ParseClock(b.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if startMin >= endMin {
			return nil, ErrInvalidBreakPeriod
		}
		breaks = append(breaks, scheduler.BreakPeriod{StartMin: startMin, EndMin: endMin})
	}
	return breaks, nil
}

// resolveRoster maps requested consultant names to the session roster,
// defaulting to every active consultant when none are given.
func (u *plannerUsecase) resolveRoster(requested []string) ([]string, error) {
	if len(requested) == 0 {
		consultants, err := u.consultantRepo.FindAllActive(u.db)
		if err != nil {
			u.log.Warnf("Failed to load consultant roster: %+v", err)
			return nil, err
		}
		if len(consultants) == 0 {
			return nil, ErrEmptyRoster
		}
		names := make([]string, len(consultants))
		for i, c := range consultants {
			names[i] = c.Name
		}
		return names, nil
	}

	consultants, err := u.consultantRepo.FindByNames(u.db, requested)
	if err != nil {
		u.log.Warnf("Failed to resolve consultants: %+v", err)
		return nil, err
	}
	if len(consultants) != len(requested) {
		return nil, ErrUnknownConsultant
	}
	return requested, nil
}

func sessionHasSlot(session *service.PlannerSession, date string, startMin int) bool {
	dateKnown := false
	for _, d := range session.Dates {
		if d == date {
			dateKnown = true
			break
		}
	}
	if !dateKnown {
		return false
	}
	for _, slot := range session.Slots {
		if slot.StartMin == startMin {
			return true
		}
	}
	return false
}

func mapSessionError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, service.ErrConsultantNotInRoster):
		return ErrUnknownConsultant
	case errors.Is(err, scheduler.ErrUnknownBulkAction):
		return scheduler.ErrUnknownBulkAction
	default:
		return err
	}
}

func sessionToResponse(session *service.PlannerSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionID:    session.ID,
		StartDate:    session.StartDate.Format(scheduler.DateFormat),
		EndDate:      session.EndDate.Format(scheduler.DateFormat),
		Roster:       session.Roster,
		Appointments: converter.AppointmentsToResponses(session.Preview),
		Total:        len(session.Preview),
	}
}
