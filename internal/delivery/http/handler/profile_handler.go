package handler

import (
	"encoding/json"
	"net/http"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/delivery/http/middleware"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/usecase"
	"clinic-appointment-backend/pkg/response"
	"clinic-appointment-backend/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	if role == entity.RoleDoctor {
		h.getDoctorProfile(w, r, userID)
		return
	}

	profile, err := h.profileUsecase.GetPatientProfile(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient record not found")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) getDoctorProfile(w http.ResponseWriter, r *http.Request, userID uint) {
	profile, err := h.profileUsecase.GetDoctorProfile(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor record not found")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.UpdatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.profileUsecase.UpdatePatientProfile(r.Context(), userID, &req); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient record not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid birth date format, expected YYYY-MM-DD", nil)
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", nil)
}

func (h *ProfileHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	appointments, err := h.profileUsecase.GetMyAppointments(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
