package converter

import (
	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its response DTO.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:        doctor.ID,
		FirstName: doctor.FirstName,
		LastName:  doctor.LastName,
	}
}

// DoctorsToResponses converts a slice of Doctor entities.
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}

// LocationToResponse converts a Location entity to its response DTO.
func LocationToResponse(location *entity.Location) *dto.LocationResponse {
	if location == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:      location.ID,
		Address: location.Address,
	}
}

// LocationsToResponses converts a slice of Location entities.
func LocationsToResponses(locations []entity.Location) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i, location := range locations {
		responses[i] = *LocationToResponse(&location)
	}
	return responses
}
