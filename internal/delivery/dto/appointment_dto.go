package dto

// Request DTOs

type BookAppointmentRequest struct {
	DoctorLocationID int    `json:"doctor_location_id" validate:"required,min=1"`
	StartTime        string `json:"start_time" validate:"required"` // Format: YYYY-MM-DDTHH:MM:SS
	EndTime          string `json:"end_time" validate:"required"`   // Format: YYYY-MM-DDTHH:MM:SS
}

// Response DTOs

type AppointmentResponse struct {
	ID               int    `json:"id"`
	DoctorLocationID int    `json:"doctor_location_id"`
	DoctorID         int    `json:"doctor_id,omitempty"`
	LocationID       int    `json:"location_id,omitempty"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	DayOfWeek        string `json:"day_of_week"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
