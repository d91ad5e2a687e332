package http

import (
	"net/http"
	"time"

	"clinic-appointment-backend/internal/delivery/http/handler"
	"clinic-appointment-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	profileHandler     *handler.ProfileHandler
	scheduleHandler    *handler.ScheduleHandler
	patientHandler     *handler.PatientHandler
	reportHandler      *handler.ReportHandler
	sessionMiddleware  *middleware.SessionMiddleware
	corsOrigin         string
	requestTimeout     time.Duration
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	profileHandler *handler.ProfileHandler,
	scheduleHandler *handler.ScheduleHandler,
	patientHandler *handler.PatientHandler,
	reportHandler *handler.ReportHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsOrigin string,
	requestTimeout time.Duration,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		doctorHandler:      doctorHandler,
		profileHandler:     profileHandler,
		scheduleHandler:    scheduleHandler,
		patientHandler:     patientHandler,
		reportHandler:      reportHandler,
		sessionMiddleware:  sessionMiddleware,
		corsOrigin:         corsOrigin,
		requestTimeout:     requestTimeout,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (session required)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.sessionMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Public doctor directory
	schedule := api.PathPrefix("/schedule").Subrouter()
	schedule.HandleFunc("/doctors", r.scheduleHandler.GetDoctorsSchedule).Methods(http.MethodGet)
	schedule.HandleFunc("/departments", r.scheduleHandler.GetDepartments).Methods(http.MethodGet)
	schedule.HandleFunc("/departments/{id}/doctors", r.scheduleHandler.GetDoctorsByDepartment).Methods(http.MethodGet)

	// Appointment routes (session required)
	appointment := api.PathPrefix("/appointment").Subrouter()
	appointment.Use(r.sessionMiddleware.Authenticate)
	appointment.HandleFunc("/available-slots", r.appointmentHandler.GetAvailableSlots).Methods(http.MethodGet)
	appointment.HandleFunc("/create", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointment.HandleFunc("/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Profile routes (session required)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.sessionMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetMyProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateMyProfile).Methods(http.MethodPut)
	profile.HandleFunc("/appointments", r.profileHandler.GetMyAppointments).Methods(http.MethodGet)

	// Patient record routes (session required, authorization in usecase)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.sessionMiddleware.Authenticate)
	patient.HandleFunc("/{id}/info", r.patientHandler.GetInfo).Methods(http.MethodGet)
	patient.HandleFunc("/{id}/appointments", r.patientHandler.GetAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/{id}/diagnoses", r.patientHandler.GetDiagnoses).Methods(http.MethodGet)

	// Doctor workspace (doctor role only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.sessionMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.doctorHandler.GetMyAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/diagnosis", r.doctorHandler.RecordDiagnosis).Methods(http.MethodPost)

	// Reports (manager and admin only)
	reports := api.PathPrefix("/reports").Subrouter()
	reports.Use(r.sessionMiddleware.Authenticate)
	reports.Use(middleware.RequireReporting)
	reports.HandleFunc("/types", r.reportHandler.GetReportTypes).Methods(http.MethodGet)
	reports.HandleFunc("", r.reportHandler.Generate).Methods(http.MethodPost)
	reports.HandleFunc("", r.reportHandler.GetHistory).Methods(http.MethodGet)
	reports.HandleFunc("/{id}", r.reportHandler.GetDetails).Methods(http.MethodGet)
	reports.HandleFunc("/{id}", r.reportHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(middleware.CORS(r.corsOrigin))
	r.router.Use(middleware.Timeout(r.requestTimeout))

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
