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

type AppointmentHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewAppointmentHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.bookingUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		respondError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	appointments, err := h.bookingUsecase.GetDoctorAppointments(r.Context(), doctorID)
	if err != nil {
		respondError(w, err, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.bookingUsecase.CancelAppointment(r.Context(), appointmentID); err != nil {
		respondError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
