package handler

import (
	"encoding/json"
	"net/http"

	"go-consultation-booking/internal/delivery/dto"
	"go-consultation-booking/internal/usecase"
	"go-consultation-booking/pkg/response"
	"go-consultation-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultantHandler struct {
	consultantUsecase usecase.ConsultantUsecase
	validator         *validator.CustomValidator
}

func NewConsultantHandler(consultantUsecase usecase.ConsultantUsecase, validator *validator.CustomValidator) *ConsultantHandler {
	return &ConsultantHandler{
		consultantUsecase: consultantUsecase,
		validator:         validator,
	}
}

func (h *ConsultantHandler) CreateConsultant(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultant, err := h.consultantUsecase.CreateConsultant(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrConsultantExists {
			response.Error(w, http.StatusConflict, "Consultant with this name already exists", nil)
			return
		}
		response.InternalServerError(w, "Failed to create consultant")
		return
	}

	response.Success(w, http.StatusCreated, "Consultant created successfully", consultant)
}

func (h *ConsultantHandler) GetConsultant(w http.ResponseWriter, r *http.Request) {
	consultantID, ok := h.consultantID(w, r)
	if !ok {
		return
	}

	consultant, err := h.consultantUsecase.GetConsultant(r.Context(), consultantID)
	if err != nil {
		if err == usecase.ErrConsultantNotFound {
			response.NotFound(w, "Consultant not found")
			return
		}
		response.InternalServerError(w, "Failed to get consultant")
		return
	}

	response.Success(w, http.StatusOK, "Consultant retrieved successfully", consultant)
}

func (h *ConsultantHandler) GetAllConsultants(w http.ResponseWriter, r *http.Request) {
	consultants, err := h.consultantUsecase.GetAllConsultants(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get consultants")
		return
	}

	response.Success(w, http.StatusOK, "Consultants retrieved successfully", consultants)
}

func (h *ConsultantHandler) UpdateConsultant(w http.ResponseWriter, r *http.Request) {
	consultantID, ok := h.consultantID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateConsultantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultant, err := h.consultantUsecase.UpdateConsultant(r.Context(), consultantID, &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultantNotFound:
			response.NotFound(w, "Consultant not found")
		case usecase.ErrConsultantExists:
			response.Error(w, http.StatusConflict, "Consultant with this name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update consultant")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultant updated successfully", consultant)
}

func (h *ConsultantHandler) DeleteConsultant(w http.ResponseWriter, r *http.Request) {
	consultantID, ok := h.consultantID(w, r)
	if !ok {
		return
	}

	if err := h.consultantUsecase.DeleteConsultant(r.Context(), consultantID); err != nil {
		if err == usecase.ErrConsultantNotFound {
			response.NotFound(w, "Consultant not found")
			return
		}
		response.InternalServerError(w, "Failed to delete consultant")
		return
	}

	response.Success(w, http.StatusOK, "Consultant deleted successfully", nil)
}

func (h *ConsultantHandler) consultantID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	consultantID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultant ID", nil)
		return uuid.Nil, false
	}
	return consultantID, true
}
