package handler

import (
	"net/http"
	"strconv"

	"clinic-appointment-backend/internal/usecase"
	"clinic-appointment-backend/pkg/response"

	"github.com/gorilla/mux"
)

// ScheduleHandler serves the public doctor directory. No authentication.
type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUsecase: scheduleUsecase}
}

func (h *ScheduleHandler) GetDoctorsSchedule(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.scheduleUsecase.GetDoctorsSchedule(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get doctors schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors schedule retrieved successfully", doctors)
}

func (h *ScheduleHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.scheduleUsecase.GetDepartments(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get departments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *ScheduleHandler) GetDoctorsByDepartment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	departmentID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil || departmentID == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	doctors, err := h.scheduleUsecase.GetDoctorsByDepartment(r.Context(), uint(departmentID))
	if err != nil {
		switch err {
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
