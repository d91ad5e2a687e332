package handler

import (
	"net/http"
	"strconv"

	"clinic-appointment-backend/internal/delivery/http/middleware"
	"clinic-appointment-backend/internal/usecase"
	"clinic-appointment-backend/pkg/response"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{patientUsecase: patientUsecase}
}

func (h *PatientHandler) patientID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *PatientHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	info, err := h.patientUsecase.GetInfo(r.Context(), userID, role, patientID)
	if err != nil {
		h.writeError(w, err, "Failed to get patient info")
		return
	}

	response.Success(w, http.StatusOK, "Patient info retrieved successfully", info)
}

func (h *PatientHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	appointments, err := h.patientUsecase.GetAppointments(r.Context(), userID, role, patientID)
	if err != nil {
		h.writeError(w, err, "Failed to get patient appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *PatientHandler) GetDiagnoses(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	diagnoses, err := h.patientUsecase.GetDiagnoses(r.Context(), userID, role, patientID)
	if err != nil {
		h.writeError(w, err, "Failed to get patient diagnoses")
		return
	}

	response.Success(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses)
}

func (h *PatientHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrPatientAccessDenied:
		response.Forbidden(w, "No access to this patient's data")
	case usecase.ErrStorageUnavailable:
		response.ServiceUnavailable(w, "Service temporarily unavailable")
	default:
		response.InternalServerError(w, fallback)
	}
}
