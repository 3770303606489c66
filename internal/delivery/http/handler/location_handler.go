package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/usecase"
	"clinicbook/pkg/response"
	"clinicbook/pkg/validator"

	"github.com/gorilla/mux"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.CreateLocation(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to create location")
		return
	}

	response.Success(w, http.StatusCreated, "Location created successfully", location)
}

func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	location, err := h.locationUsecase.GetLocation(r.Context(), locationID)
	if err != nil {
		respondError(w, err, "Failed to get location")
		return
	}

	response.Success(w, http.StatusOK, "Location retrieved successfully", location)
}

func (h *LocationHandler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationUsecase.GetAllLocations(r.Context())
	if err != nil {
		respondError(w, err, "Failed to list locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

func (h *LocationHandler) AddDoctorLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pair, err := h.locationUsecase.AddDoctorLocation(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to associate doctor with location")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor associated with location successfully", pair)
}

func (h *LocationHandler) RemoveDoctorLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.locationUsecase.RemoveDoctorLocation(r.Context(), &req); err != nil {
		respondError(w, err, "Failed to remove doctor-location association")
		return
	}

	response.Success(w, http.StatusOK, "Doctor-location association removed successfully", nil)
}
