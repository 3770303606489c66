package converter

import (
	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// Doctor and location identifiers are filled when the pair is preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		DoctorLocationID: appointment.DoctorLocationID,
		DoctorID:         appointment.DoctorLocation.DoctorID,
		LocationID:       appointment.DoctorLocation.LocationID,
		StartTime:        appointment.StartTime.Format(TimestampLayout),
		EndTime:          appointment.EndTime.Format(TimestampLayout),
		DayOfWeek:        appointment.DayOfWeek,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
