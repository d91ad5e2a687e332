package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
)

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		part, whole int64
		want        string
	}{
		{1, 3, "33.33"},
		{2, 3, "66.67"},
		{5, 5, "100.00"},
		{0, 5, "0.00"},
		{5, 0, "0.00"},
		{0, 0, "0.00"},
	}
	for _, tt := range tests {
		if got := percentage(tt.part, tt.whole); got != tt.want {
			t.Errorf("percentage(%d, %d) = %s, want %s", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestMonthCapacity(t *testing.T) {
	t.Parallel()

	// September 2026 has 4 Mondays and 5 Wednesdays.
	from, _ := time.Parse("2006-01", "2026-09")
	to := from.AddDate(0, 1, 0)

	entries := []entity.WeeklyScheduleEntry{
		{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00"}, // 6 slots
		{DayOfWeek: 3, StartTime: "14:00:00", EndTime: "15:00:00"}, // 2 slots
	}

	got := monthCapacity(entries, from, to)
	want := int64(4*6 + 5*2)
	if got != want {
		t.Errorf("monthCapacity = %d, want %d", got, want)
	}

	if got := monthCapacity(nil, from, to); got != 0 {
		t.Errorf("empty schedule capacity = %d, want 0", got)
	}
}

func TestGenerateReport(t *testing.T) {
	t.Parallel()

	doctorRepo := &stubDoctorRepo{
		findByID: func(ctx context.Context, id uint) (*entity.Doctor, error) {
			if id != 3 {
				return nil, nil
			}
			return &entity.Doctor{ID: 3, FullName: "Dr. Petrova"}, nil
		},
	}
	scheduleRepo := &stubScheduleRepo{
		findByDoctorID: func(ctx context.Context, doctorID uint) ([]entity.WeeklyScheduleEntry, error) {
			return []entity.WeeklyScheduleEntry{
				{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00"},
			}, nil
		},
	}
	appointmentRepo := &stubAppointmentRepo{
		countByDoctorAndRange: func(ctx context.Context, doctorID uint, from, to time.Time) (int64, int64, error) {
			return 12, 9, nil
		},
	}

	t.Run("doctor workload", func(t *testing.T) {
		t.Parallel()

		var stored *entity.Report
		reports := &reportRepoStub{
			create: func(ctx context.Context, r *entity.Report) error {
				r.ID = 11
				stored = r
				return nil
			},
		}
		audit := &stubAuditService{}

		u := NewReportUsecase(newTestLogger(), doctorRepo, scheduleRepo, appointmentRepo, reports, audit)
		resp, err := u.Generate(context.Background(), 1, &dto.GenerateReportRequest{
			ReportType: entity.ReportTypeDoctorWorkload,
			DoctorID:   3,
			Month:      "2026-09",
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		if resp.ID != 11 || resp.ReportType != entity.ReportTypeDoctorWorkload {
			t.Errorf("response = %+v", resp)
		}
		if resp.Result["attendance_rate"] != "75.00" {
			t.Errorf("attendance_rate = %v, want 75.00", resp.Result["attendance_rate"])
		}
		// 4 Mondays x 6 slots = capacity 24; 12 of 24 booked.
		if resp.Result["capacity_share"] != "50.00" {
			t.Errorf("capacity_share = %v, want 50.00", resp.Result["capacity_share"])
		}
		if stored.CreatedBy != 1 {
			t.Errorf("CreatedBy = %d, want 1", stored.CreatedBy)
		}
		if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionReportGenerate {
			t.Errorf("audit actions = %v", audit.actions)
		}
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		t.Parallel()

		u := NewReportUsecase(newTestLogger(), doctorRepo, scheduleRepo, appointmentRepo, &reportRepoStub{}, &stubAuditService{})
		_, err := u.Generate(context.Background(), 1, &dto.GenerateReportRequest{
			ReportType: "salary_export",
			DoctorID:   3,
			Month:      "2026-09",
		})
		if !errors.Is(err, ErrUnknownReportType) {
			t.Errorf("err = %v, want ErrUnknownReportType", err)
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		t.Parallel()

		u := NewReportUsecase(newTestLogger(), doctorRepo, scheduleRepo, appointmentRepo, &reportRepoStub{}, &stubAuditService{})
		_, err := u.Generate(context.Background(), 1, &dto.GenerateReportRequest{
			ReportType: entity.ReportTypeDoctorWorkload,
			DoctorID:   99,
			Month:      "2026-09",
		})
		if !errors.Is(err, ErrDoctorNotFound) {
			t.Errorf("err = %v, want ErrDoctorNotFound", err)
		}
	})
}

func TestDeleteReport(t *testing.T) {
	t.Parallel()

	t.Run("missing report", func(t *testing.T) {
		t.Parallel()

		u := NewReportUsecase(newTestLogger(), &stubDoctorRepo{}, &stubScheduleRepo{}, &stubAppointmentRepo{}, &reportRepoStub{}, &stubAuditService{})
		if err := u.Delete(context.Background(), 1, 11); !errors.Is(err, ErrReportNotFound) {
			t.Errorf("err = %v, want ErrReportNotFound", err)
		}
	})

	t.Run("deleted report is audited", func(t *testing.T) {
		t.Parallel()

		reports := &reportRepoStub{
			deleteFn: func(ctx context.Context, id uint) (int64, error) {
				return 1, nil
			},
		}
		audit := &stubAuditService{}

		u := NewReportUsecase(newTestLogger(), &stubDoctorRepo{}, &stubScheduleRepo{}, &stubAppointmentRepo{}, reports, audit)
		if err := u.Delete(context.Background(), 1, 11); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionReportDelete {
			t.Errorf("audit actions = %v", audit.actions)
		}
	})
}
