package dto

// Request DTOs

type AddAvailabilityRequest struct {
	DoctorID   int    `json:"doctor_id" validate:"required,min=1"`
	LocationID int    `json:"location_id" validate:"required,min=1"`
	StartTime  string `json:"start_time" validate:"required"` // Format: YYYY-MM-DDTHH:MM:SS
	EndTime    string `json:"end_time" validate:"required"`   // Format: YYYY-MM-DDTHH:MM:SS
	DayOfWeek  string `json:"day_of_week" validate:"required,weekday"`
}

// Response DTOs

type AvailabilityResponse struct {
	ID         int    `json:"id"`
	DoctorID   int    `json:"doctor_id"`
	LocationID int    `json:"location_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	DayOfWeek  string `json:"day_of_week"`
}

type AvailabilityListResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Total          int                    `json:"total"`
}

type OpenSlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type OpenSlotsResponse struct {
	DoctorLocationID int                `json:"doctor_location_id"`
	Date             string             `json:"date"`
	Slots            []OpenSlotResponse `json:"slots"`
}
