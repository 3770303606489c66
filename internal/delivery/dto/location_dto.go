package dto

// Request DTOs

type CreateLocationRequest struct {
	Address string `json:"address" validate:"required,max=255"`
}

type DoctorLocationRequest struct {
	DoctorID   int `json:"doctor_id" validate:"required,min=1"`
	LocationID int `json:"location_id" validate:"required,min=1"`
}

// Response DTOs

type LocationResponse struct {
	ID      int    `json:"id"`
	Address string `json:"address"`
}

type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int                `json:"total"`
}

type DoctorLocationResponse struct {
	ID         int `json:"id"`
	DoctorID   int `json:"doctor_id"`
	LocationID int `json:"location_id"`
}
