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

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

func (h *ReportHandler) GetReportTypes(w http.ResponseWriter, r *http.Request) {
	types := h.reportUsecase.GetReportTypes()
	response.Success(w, http.StatusOK, "Report types retrieved successfully", types)
}

func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.Generate(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownReportType:
			response.Error(w, http.StatusBadRequest, "Unknown report type", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM", nil)
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to generate report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report generated successfully", report)
}

func (h *ReportHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.GetHistory(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get report history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report history retrieved successfully", reports)
}

func (h *ReportHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || reportID == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	report, err := h.reportUsecase.GetDetails(r.Context(), uint(reportID))
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	reportID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || reportID == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	if err := h.reportUsecase.Delete(r.Context(), userID, uint(reportID)); err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case usecase.ErrStorageUnavailable:
			response.ServiceUnavailable(w, "Service temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to delete report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report deleted successfully", nil)
}
