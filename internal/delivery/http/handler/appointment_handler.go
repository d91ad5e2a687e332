package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/delivery/http/middleware"
	"clinic-appointment-backend/internal/usecase"
	"clinic-appointment-backend/pkg/response"
	"clinic-appointment-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	slotUsecase        usecase.SlotUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(slotUsecase usecase.SlotUsecase, appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		slotUsecase:        slotUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetAvailableSlots lists the free 30-minute slots for a doctor on a date.
// Query params: doctor_id, date (YYYY-MM-DD).
func (h *AppointmentHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseUint(r.URL.Query().Get("doctor_id"), 10, 32)
	if err != nil || doctorID == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid doctor_id", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Missing date parameter", nil)
		return
	}

	slots, err := h.slotUsecase.GetAvailableSlots(r.Context(), uint(doctorID), date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrDoctorNotWorking:
			response.NotFound(w, "Doctor does not see patients on this day")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient record not found")
		case usecase.ErrCabinetNotFound:
			response.NotFound(w, "No cabinet assigned to this doctor")
		case usecase.ErrSlotTaken:
			response.Conflict(w, "This time slot is already taken")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil || appointmentID == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), uint(appointmentID), userID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
