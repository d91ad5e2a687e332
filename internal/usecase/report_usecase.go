package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/domain/repository"
	"clinic-appointment-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrReportNotFound    = errors.New("report not found")
)

var reportTypes = []dto.ReportTypeResponse{
	{ID: entity.ReportTypeDoctorWorkload, Description: "Doctor workload and attendance for a calendar month"},
}

type ReportUsecase interface {
	GetReportTypes() []dto.ReportTypeResponse
	// Generate computes the requested report, stores it, and returns the
	// stored row. Report types are allow-listed.
	Generate(ctx context.Context, userID uint, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	GetHistory(ctx context.Context) (*dto.ReportListResponse, error)
	GetDetails(ctx context.Context, reportID uint) (*dto.ReportResponse, error)
	Delete(ctx context.Context, userID, reportID uint) error
}

type reportUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	scheduleRepo    repository.ScheduleRepository
	appointmentRepo repository.AppointmentRepository
	reportRepo      repository.ReportRepository
	auditService    service.AuditService
}

func NewReportUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	scheduleRepo repository.ScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
	reportRepo repository.ReportRepository,
	auditService service.AuditService,
) ReportUsecase {
	return &reportUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		reportRepo:      reportRepo,
		auditService:    auditService,
	}
}

func (u *reportUsecase) GetReportTypes() []dto.ReportTypeResponse {
	return reportTypes
}

func (u *reportUsecase) Generate(ctx context.Context, userID uint, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	if req.ReportType != entity.ReportTypeDoctorWorkload {
		return nil, ErrUnknownReportType
	}

	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, mapStorageErr(err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	from := month
	to := month.AddDate(0, 1, 0)

	total, appeared, err := u.appointmentRepo.CountByDoctorAndRange(ctx, doctor.ID, from, to)
	if err != nil {
		u.log.Warnf("Failed to count appointments for doctor %d: %+v", doctor.ID, err)
		return nil, mapStorageErr(err)
	}

	entries, err := u.scheduleRepo.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to load schedule for doctor %d: %+v", doctor.ID, err)
		return nil, mapStorageErr(err)
	}

	capacity := monthCapacity(entries, from, to)

	result := entity.JSON{
		"doctor_id":          doctor.ID,
		"doctor_name":        doctor.FullName,
		"month":              req.Month,
		"total_appointments": total,
		"appeared":           appeared,
		"attendance_rate":    percentage(appeared, total),
		"capacity_share":     percentage(total, capacity),
	}

	report := &entity.Report{
		ReportType: req.ReportType,
		Parameters: entity.JSON{"doctor_id": req.DoctorID, "month": req.Month},
		Result:     result,
		CreatedBy:  userID,
	}

	if err := u.reportRepo.Create(ctx, report); err != nil {
		u.log.Warnf("Failed to store report: %+v", err)
		return nil, mapStorageErr(err)
	}

	u.auditService.Record(ctx, &userID, entity.AuditActionReportGenerate, entity.JSON{
		"report_id":   report.ID,
		"report_type": report.ReportType,
	})

	return reportToResponse(report), nil
}

func (u *reportUsecase) GetHistory(ctx context.Context) (*dto.ReportListResponse, error) {
	reports, err := u.reportRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load reports: %+v", err)
		return nil, mapStorageErr(err)
	}

	responses := make([]dto.ReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = *reportToResponse(&r)
	}
	return &dto.ReportListResponse{Reports: responses, Total: len(responses)}, nil
}

func (u *reportUsecase) GetDetails(ctx context.Context, reportID uint) (*dto.ReportResponse, error) {
	report, err := u.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		u.log.Warnf("Failed to find report %d: %+v", reportID, err)
		return nil, mapStorageErr(err)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return reportToResponse(report), nil
}

func (u *reportUsecase) Delete(ctx context.Context, userID, reportID uint) error {
	affected, err := u.reportRepo.Delete(ctx, reportID)
	if err != nil {
		u.log.Warnf("Failed to delete report %d: %+v", reportID, err)
		return mapStorageErr(err)
	}
	if affected == 0 {
		return ErrReportNotFound
	}

	u.auditService.Record(ctx, &userID, entity.AuditActionReportDelete, entity.JSON{"report_id": reportID})
	return nil
}

// monthCapacity counts the bookable slots a weekly schedule offers within
// [from, to): full 30-minute slots per working day times the number of
// matching weekdays in the month.
func monthCapacity(entries []entity.WeeklyScheduleEntry, from, to time.Time) int64 {
	slotsPerDay := make(map[int]int64, len(entries))
	for _, e := range entries {
		start, err := parseClock(e.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(e.EndTime)
		if err != nil {
			continue
		}
		if end > start {
			slotsPerDay[e.DayOfWeek] = int64((end - start) / slotStepMinutes)
		}
	}

	var capacity int64
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		capacity += slotsPerDay[isoWeekday(day)]
	}
	return capacity
}

// percentage renders part/whole as a percentage with two decimal places,
// "0.00" when the denominator is zero.
func percentage(part, whole int64) string {
	if whole == 0 {
		return "0.00"
	}
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(whole)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		StringFixed(2)
}

func reportToResponse(report *entity.Report) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:         report.ID,
		ReportType: report.ReportType,
		Parameters: report.Parameters,
		Result:     report.Result,
		CreatedBy:  report.CreatedBy,
		CreatedAt:  report.CreatedAt,
	}
}
