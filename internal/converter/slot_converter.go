package converter

import (
	"go-consultation-booking/internal/delivery/dto"
	"go-consultation-booking/internal/domain/entity"
	"go-consultation-booking/internal/scheduler"
)

// SlotToResponse converts an AppointmentSlot entity to SlotResponse DTO
func SlotToResponse(slot *entity.AppointmentSlot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:          slot.ID,
		SlotDate:    slot.SlotDate.Format(scheduler.DateFormat),
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Consultants: slot.ConsultantNames(),
		CreatedAt:   slot.CreatedAt,
		UpdatedAt:   slot.UpdatedAt,
	}
}

// SlotsToResponses converts a slice of AppointmentSlot entities to SlotResponse DTOs
func SlotsToResponses(slots []entity.AppointmentSlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *SlotToResponse(&slots[i])
	}
	return responses
}

// AppointmentsToResponses converts materialized engine output to response DTOs
func AppointmentsToResponses(appointments []scheduler.GeneratedAppointment) []dto.GeneratedAppointmentResponse {
	responses := make([]dto.GeneratedAppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = dto.GeneratedAppointmentResponse{
			Date:        a.Date,
			StartTime:   scheduler.FormatClock(a.StartMin),
			EndTime:     scheduler.FormatClock(a.EndMin),
			Consultants: a.Consultants,
		}
	}
	return responses
}
