package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDoctorNotWorking  = errors.New("doctor does not see patients on this day")
)

// slotStepMinutes is the fixed appointment slot width.
const slotStepMinutes = 30

type SlotUsecase interface {
	// GetAvailableSlots returns the bookable 30-minute slots for a doctor on
	// a date, in ascending order. A day with no schedule entry yields
	// ErrDoctorNotWorking, which is distinct from a fully booked (empty)
	// result.
	GetAvailableSlots(ctx context.Context, doctorID uint, date string) (*dto.AvailableSlotsResponse, error)
}

type slotUsecase struct {
	log             *logrus.Logger
	scheduleRepo    repository.ScheduleRepository
	appointmentRepo repository.AppointmentRepository
}

func NewSlotUsecase(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
) SlotUsecase {
	return &slotUsecase{
		log:             log,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *slotUsecase) GetAvailableSlots(ctx context.Context, doctorID uint, date string) (*dto.AvailableSlotsResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	entry, err := u.scheduleRepo.FindByDoctorAndDay(ctx, doctorID, isoWeekday(day))
	if err != nil {
		u.log.Warnf("Failed to load schedule for doctor %d: %+v", doctorID, err)
		return nil, mapStorageErr(err)
	}
	if entry == nil {
		return nil, ErrDoctorNotWorking
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDate(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to load appointments for doctor %d on %s: %+v", doctorID, date, err)
		return nil, mapStorageErr(err)
	}

	// Busy times are normalized to "HH:MM": the time column scans back as
	// "HH:MM:SS" while generated slots use the short form.
	busy := make(map[string]bool, len(appointments))
	for _, a := range appointments {
		mins, err := parseClock(a.Time)
		if err != nil {
			u.log.Warnf("Skipping malformed appointment time %q: %+v", a.Time, err)
			continue
		}
		busy[formatClock(mins)] = true
	}

	slots, err := buildSlots(entry.StartTime, entry.EndTime, busy)
	if err != nil {
		u.log.Warnf("Malformed schedule window for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AvailableSlotsResponse{
		Date:           date,
		DoctorID:       doctorID,
		AvailableSlots: slots,
	}, nil
}

// isoWeekday maps a date to ISO weekday numbering, 1=Monday..7=Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// parseClock converts "HH:MM" (or "HH:MM:SS" as stored by the time column)
// into minutes since midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return h*60 + m, nil
}

// buildSlots generates the candidate 30-minute slots in [start, end) and
// drops the ones present in busy. A trailing window shorter than a full slot
// is not emitted. Pure function of its inputs.
func buildSlots(startTime, endTime string, busy map[string]bool) ([]string, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for at := start; at+slotStepMinutes <= end; at += slotStepMinutes {
		slot := formatClock(at)
		if !busy[slot] {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
