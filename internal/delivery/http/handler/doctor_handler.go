package handler

import (
	"encoding/json"
	"net/http"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/delivery/http/middleware"
	"clinic-appointment-backend/internal/usecase"
	"clinic-appointment-backend/pkg/response"
	"clinic-appointment-backend/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	appointments, err := h.doctorUsecase.GetMyAppointments(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor record not found")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *DoctorHandler) RecordDiagnosis(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.RecordDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.doctorUsecase.RecordDiagnosis(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor record not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrVisitAlreadyRecorded:
			response.Conflict(w, "A diagnosis has already been recorded for this appointment")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to record diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis recorded successfully", visit)
}
