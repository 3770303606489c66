package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/usecase"
	"clinicbook/pkg/response"
	"clinicbook/pkg/validator"

	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) AddAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.AddAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.availabilityUsecase.AddAvailability(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to add availability")
		return
	}

	response.Success(w, http.StatusCreated, "Availability added successfully", slot)
}

func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid availability ID", nil)
		return
	}

	slot, err := h.availabilityUsecase.GetAvailability(r.Context(), slotID)
	if err != nil {
		respondError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", slot)
}

func (h *AvailabilityHandler) GetDoctorAvailabilities(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	slots, err := h.availabilityUsecase.GetDoctorAvailabilities(r.Context(), doctorID)
	if err != nil {
		respondError(w, err, "Failed to list availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", slots)
}

func (h *AvailabilityHandler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	slotID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid availability ID", nil)
		return
	}

	if err := h.availabilityUsecase.DeleteAvailability(r.Context(), doctorID, slotID); err != nil {
		respondError(w, err, "Failed to delete availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability deleted successfully", nil)
}

// GetOpenSlots resolves the free windows for a doctor-location pair on the
// date given by the required ?date=YYYY-MM-DD query parameter.
func (h *AvailabilityHandler) GetOpenSlots(w http.ResponseWriter, r *http.Request) {
	doctorLocationID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor location ID", nil)
		return
	}

	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid or missing date, use YYYY-MM-DD", nil)
		return
	}

	slots, err := h.availabilityUsecase.FindOpenSlots(r.Context(), doctorLocationID, date)
	if err != nil {
		respondError(w, err, "Failed to resolve open slots")
		return
	}

	response.Success(w, http.StatusOK, "Open slots retrieved successfully", slots)
}
