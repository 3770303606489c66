package http

import (
	"net/http"

	"clinicbook/internal/delivery/http/handler"
	"clinicbook/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	locationHandler     *handler.LocationHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	locationHandler *handler.LocationHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		locationHandler:     locationHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor management
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{id}/locations", r.doctorHandler.GetDoctorLocations).Methods(http.MethodGet)

	// Location management
	api.HandleFunc("/locations", r.locationHandler.CreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/locations", r.locationHandler.GetAllLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", r.locationHandler.GetLocation).Methods(http.MethodGet)

	// Doctor-location pairing
	api.HandleFunc("/doctor-locations", r.locationHandler.AddDoctorLocation).Methods(http.MethodPost)
	api.HandleFunc("/doctor-locations", r.locationHandler.RemoveDoctorLocation).Methods(http.MethodDelete)

	// Availability templates
	api.HandleFunc("/availability", r.availabilityHandler.AddAvailability).Methods(http.MethodPost)
	api.HandleFunc("/availability/{id}", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/availability", r.availabilityHandler.GetDoctorAvailabilities).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/availability/{id}", r.availabilityHandler.DeleteAvailability).Methods(http.MethodDelete)

	// Open-slot resolution
	api.HandleFunc("/doctor-locations/{id}/open-slots", r.availabilityHandler.GetOpenSlots).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{id}/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
