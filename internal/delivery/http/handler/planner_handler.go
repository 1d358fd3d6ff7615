package handler

import (
	"encoding/json"
	"net/http"

	"go-consultation-booking/internal/delivery/dto"
	"go-consultation-booking/internal/scheduler"
	"go-consultation-booking/internal/usecase"
	"go-consultation-booking/pkg/response"
	"go-consultation-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PlannerHandler struct {
	plannerUsecase usecase.PlannerUsecase
	validator      *validator.CustomValidator
}

func NewPlannerHandler(plannerUsecase usecase.PlannerUsecase, validator *validator.CustomValidator) *PlannerHandler {
	return &PlannerHandler{
		plannerUsecase: plannerUsecase,
		validator:      validator,
	}
}

func (h *PlannerHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.plannerUsecase.CreateSession(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange,
			usecase.ErrInvalidTimeFormat, usecase.ErrInvalidTimeWindow,
			usecase.ErrInvalidBreakPeriod, usecase.ErrEmptyRoster,
			usecase.ErrUnknownConsultant:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create planner session")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Planner session created successfully", session)
}

func (h *PlannerHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.plannerUsecase.GetSession(r.Context(), sessionID)
	if err != nil {
		if err == usecase.ErrSessionNotFound {
			response.NotFound(w, "Planner session not found")
			return
		}
		response.InternalServerError(w, "Failed to get planner session")
		return
	}

	response.Success(w, http.StatusOK, "Planner session retrieved successfully", session)
}

func (h *PlannerHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req dto.ToggleAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.plannerUsecase.ToggleAvailability(r.Context(), sessionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Planner session not found")
		case usecase.ErrSlotNotInSession:
			response.NotFound(w, "Slot is not part of this session")
		case usecase.ErrInvalidTimeFormat, usecase.ErrUnknownConsultant:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to toggle availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", session)
}

func (h *PlannerHandler) BulkEditSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req dto.SessionBulkEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.plannerUsecase.BulkEditSession(r.Context(), sessionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Planner session not found")
		case usecase.ErrUnknownConsultant, scheduler.ErrUnknownBulkAction:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to bulk edit session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session slots updated successfully", result)
}

func (h *PlannerHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	summary, err := h.plannerUsecase.SaveSession(r.Context(), sessionID)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Planner session not found")
		case usecase.ErrUnknownConsultant:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to save planner session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments saved successfully", summary)
}

func (h *PlannerHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.plannerUsecase.DeleteSession(r.Context(), sessionID); err != nil {
		if err == usecase.ErrSessionNotFound {
			response.NotFound(w, "Planner session not found")
			return
		}
		response.InternalServerError(w, "Failed to delete planner session")
		return
	}

	response.Success(w, http.StatusOK, "Planner session deleted successfully", nil)
}

func (h *PlannerHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}
