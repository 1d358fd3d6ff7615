package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-consultation-booking/internal/delivery/dto"
	"go-consultation-booking/internal/scheduler"
	"go-consultation-booking/internal/usecase"
	"go-consultation-booking/pkg/response"
	"go-consultation-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentSlotHandler struct {
	slotUsecase usecase.AppointmentSlotUsecase
	validator   *validator.CustomValidator
}

func NewAppointmentSlotHandler(slotUsecase usecase.AppointmentSlotUsecase, validator *validator.CustomValidator) *AppointmentSlotHandler {
	return &AppointmentSlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *AppointmentSlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	filter := &dto.SlotFilterRequest{
		Date:       r.URL.Query().Get("date"),
		Consultant: r.URL.Query().Get("consultant"),
		Query:      r.URL.Query().Get("q"),
	}

	slots, err := h.slotUsecase.ListSlots(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *AppointmentSlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	slotID, ok := h.slotID(w, r)
	if !ok {
		return
	}

	slot, err := h.slotUsecase.GetSlot(r.Context(), slotID)
	if err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Slot not found")
			return
		}
		response.InternalServerError(w, "Failed to get slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot retrieved successfully", slot)
}

func (h *AppointmentSlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	slotID, ok := h.slotID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.UpdateSlot(r.Context(), slotID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat,
			usecase.ErrInvalidSlotEnd, usecase.ErrUnknownConsultant:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot updated successfully", slot)
}

func (h *AppointmentSlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID, ok := h.slotID(w, r)
	if !ok {
		return
	}

	if err := h.slotUsecase.DeleteSlot(r.Context(), slotID); err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Slot not found")
			return
		}
		response.InternalServerError(w, "Failed to delete slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}

func (h *AppointmentSlotHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	summary, err := h.slotUsecase.BulkDelete(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to bulk delete slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots deleted successfully", summary)
}

func (h *AppointmentSlotHandler) BulkEdit(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.slotUsecase.BulkEdit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownConsultant, scheduler.ErrUnknownBulkAction:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to bulk edit slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots updated successfully", result)
}

func (h *AppointmentSlotHandler) slotID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	slotID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return 0, false
	}
	return slotID, true
}
