package converter

import (
	"go-consultation-booking/internal/delivery/dto"
	"go-consultation-booking/internal/domain/entity"
)

// ConsultantToResponse converts a Consultant entity to ConsultantResponse DTO
func ConsultantToResponse(consultant *entity.Consultant) *dto.ConsultantResponse {
	if consultant == nil {
		return nil
	}

	isActive := false
	if consultant.IsActive != nil {
		isActive = *consultant.IsActive
	}

	return &dto.ConsultantResponse{
		ID:        consultant.ID,
		Name:      consultant.Name,
		Specialty: consultant.Specialty,
		IsActive:  isActive,
		CreatedAt: consultant.CreatedAt,
		UpdatedAt: consultant.UpdatedAt,
	}
}

// ConsultantsToResponses converts a slice of Consultant entities to DTOs
func ConsultantsToResponses(consultants []entity.Consultant) []dto.ConsultantResponse {
	responses := make([]dto.ConsultantResponse, len(consultants))
	for i := range consultants {
		responses[i] = *ConsultantToResponse(&consultants[i])
	}
	return responses
}
