package usecase

import (
	"context"
	"io"
	"time"

	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/service"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Stub repositories: each method delegates to an optional function field and
// returns zero values when the field is unset.

type stubUserRepo struct {
	createWithPatient func(ctx context.Context, user *entity.User, patient *entity.Patient) error
	findByLogin       func(ctx context.Context, login string) (*entity.User, error)
	findByID          func(ctx context.Context, id uint) (*entity.User, error)
}

func (s *stubUserRepo) CreateWithPatient(ctx context.Context, user *entity.User, patient *entity.Patient) error {
	if s.createWithPatient != nil {
		return s.createWithPatient(ctx, user, patient)
	}
	return nil
}

func (s *stubUserRepo) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	if s.findByLogin != nil {
		return s.findByLogin(ctx, login)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, nil
}

type stubDoctorRepo struct {
	findByID            func(ctx context.Context, id uint) (*entity.Doctor, error)
	findByUserID        func(ctx context.Context, userID uint) (*entity.Doctor, error)
	findAllWithSchedule func(ctx context.Context) ([]entity.Doctor, error)
	findByDepartment    func(ctx context.Context, departmentID uint) ([]entity.Doctor, error)
}

func (s *stubDoctorRepo) FindByID(ctx context.Context, id uint) (*entity.Doctor, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, nil
}

func (s *stubDoctorRepo) FindByUserID(ctx context.Context, userID uint) (*entity.Doctor, error) {
	if s.findByUserID != nil {
		return s.findByUserID(ctx, userID)
	}
	return nil, nil
}

func (s *stubDoctorRepo) FindAllWithSchedule(ctx context.Context) ([]entity.Doctor, error) {
	if s.findAllWithSchedule != nil {
		return s.findAllWithSchedule(ctx)
	}
	return nil, nil
}

func (s *stubDoctorRepo) FindByDepartment(ctx context.Context, departmentID uint) ([]entity.Doctor, error) {
	if s.findByDepartment != nil {
		return s.findByDepartment(ctx, departmentID)
	}
	return nil, nil
}

type stubPatientRepo struct {
	findByID     func(ctx context.Context, id uint) (*entity.Patient, error)
	findByUserID func(ctx context.Context, userID uint) (*entity.Patient, error)
	update       func(ctx context.Context, patient *entity.Patient) error
}

func (s *stubPatientRepo) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, nil
}

func (s *stubPatientRepo) FindByUserID(ctx context.Context, userID uint) (*entity.Patient, error) {
	if s.findByUserID != nil {
		return s.findByUserID(ctx, userID)
	}
	return nil, nil
}

func (s *stubPatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	if s.update != nil {
		return s.update(ctx, patient)
	}
	return nil
}

type stubScheduleRepo struct {
	findByDoctorAndDay func(ctx context.Context, doctorID uint, dayOfWeek int) (*entity.WeeklyScheduleEntry, error)
	findByDoctorID     func(ctx context.Context, doctorID uint) ([]entity.WeeklyScheduleEntry, error)
}

func (s *stubScheduleRepo) FindByDoctorAndDay(ctx context.Context, doctorID uint, dayOfWeek int) (*entity.WeeklyScheduleEntry, error) {
	if s.findByDoctorAndDay != nil {
		return s.findByDoctorAndDay(ctx, doctorID, dayOfWeek)
	}
	return nil, nil
}

func (s *stubScheduleRepo) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.WeeklyScheduleEntry, error) {
	if s.findByDoctorID != nil {
		return s.findByDoctorID(ctx, doctorID)
	}
	return nil, nil
}

type stubAppointmentRepo struct {
	create                func(ctx context.Context, appointment *entity.Appointment) error
	findByDoctorAndDate   func(ctx context.Context, doctorID uint, date time.Time) ([]entity.Appointment, error)
	existsAt              func(ctx context.Context, doctorID uint, date time.Time, timeOfDay string) (bool, error)
	findByIDForDoctor     func(ctx context.Context, id, doctorID uint) (*entity.Appointment, error)
	findByDoctorID        func(ctx context.Context, doctorID uint) ([]entity.Appointment, error)
	findByPatientID       func(ctx context.Context, patientID uint) ([]entity.Appointment, error)
	findByPatientUserID   func(ctx context.Context, userID uint) ([]entity.Appointment, error)
	deleteOwnedBy         func(ctx context.Context, id, userID uint) (int64, error)
	countByDoctorAndRange func(ctx context.Context, doctorID uint, from, to time.Time) (int64, int64, error)
}

func (s *stubAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if s.create != nil {
		return s.create(ctx, appointment)
	}
	return nil
}

func (s *stubAppointmentRepo) FindByDoctorAndDate(ctx context.Context, doctorID uint, date time.Time) ([]entity.Appointment, error) {
	if s.findByDoctorAndDate != nil {
		return s.findByDoctorAndDate(ctx, doctorID, date)
	}
	return nil, nil
}

func (s *stubAppointmentRepo) ExistsAt(ctx context.Context, doctorID uint, date time.Time, timeOfDay string) (bool, error) {
	if s.existsAt != nil {
		return s.existsAt(ctx, doctorID, date, timeOfDay)
	}
	return false, nil
}

func (s *stubAppointmentRepo) FindByIDForDoctor(ctx context.Context, id, doctorID uint) (*entity.Appointment, error) {
	if s.findByIDForDoctor != nil {
		return s.findByIDForDoctor(ctx, id, doctorID)
	}
	return nil, nil
}

func (s *stubAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Appointment, error) {
	if s.findByDoctorID != nil {
		return s.findByDoctorID(ctx, doctorID)
	}
	return nil, nil
}

func (s *stubAppointmentRepo) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Appointment, error) {
	if s.findByPatientID != nil {
		return s.findByPatientID(ctx, patientID)
	}
	return nil, nil
}

func (s *stubAppointmentRepo) FindByPatientUserID(ctx context.Context, userID uint) ([]entity.Appointment, error) {
	if s.findByPatientUserID != nil {
		return s.findByPatientUserID(ctx, userID)
	}
	return nil, nil
}

func (s *stubAppointmentRepo) DeleteOwnedBy(ctx context.Context, id, userID uint) (int64, error) {
	if s.deleteOwnedBy != nil {
		return s.deleteOwnedBy(ctx, id, userID)
	}
	return 0, nil
}

func (s *stubAppointmentRepo) CountByDoctorAndRange(ctx context.Context, doctorID uint, from, to time.Time) (int64, int64, error) {
	if s.countByDoctorAndRange != nil {
		return s.countByDoctorAndRange(ctx, doctorID, from, to)
	}
	return 0, 0, nil
}

type stubVisitRepo struct {
	create              func(ctx context.Context, visit *entity.Visit) error
	findByAppointmentID func(ctx context.Context, appointmentID uint) (*entity.Visit, error)
	findByPatientID     func(ctx context.Context, patientID uint) ([]entity.Visit, error)
}

func (s *stubVisitRepo) Create(ctx context.Context, visit *entity.Visit) error {
	if s.create != nil {
		return s.create(ctx, visit)
	}
	return nil
}

func (s *stubVisitRepo) FindByAppointmentID(ctx context.Context, appointmentID uint) (*entity.Visit, error) {
	if s.findByAppointmentID != nil {
		return s.findByAppointmentID(ctx, appointmentID)
	}
	return nil, nil
}

func (s *stubVisitRepo) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Visit, error) {
	if s.findByPatientID != nil {
		return s.findByPatientID(ctx, patientID)
	}
	return nil, nil
}

type reportRepoStub struct {
	create   func(ctx context.Context, report *entity.Report) error
	findAll  func(ctx context.Context) ([]entity.Report, error)
	findByID func(ctx context.Context, id uint) (*entity.Report, error)
	deleteFn func(ctx context.Context, id uint) (int64, error)
}

func (s *reportRepoStub) Create(ctx context.Context, report *entity.Report) error {
	if s.create != nil {
		return s.create(ctx, report)
	}
	return nil
}

func (s *reportRepoStub) FindAll(ctx context.Context) ([]entity.Report, error) {
	if s.findAll != nil {
		return s.findAll(ctx)
	}
	return nil, nil
}

func (s *reportRepoStub) FindByID(ctx context.Context, id uint) (*entity.Report, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, nil
}

func (s *reportRepoStub) Delete(ctx context.Context, id uint) (int64, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return 0, nil
}

type stubCabinetRepo struct {
	findByDoctorID func(ctx context.Context, doctorID uint) (*entity.Cabinet, error)
}

func (s *stubCabinetRepo) FindByDoctorID(ctx context.Context, doctorID uint) (*entity.Cabinet, error) {
	if s.findByDoctorID != nil {
		return s.findByDoctorID(ctx, doctorID)
	}
	return nil, nil
}

type stubSessionService struct {
	create    func(ctx context.Context, userID uint, role string) (string, error)
	get       func(ctx context.Context, token string) (*service.Session, error)
	deleteFn  func(ctx context.Context, token string) error
	deletions []string
}

func (s *stubSessionService) Create(ctx context.Context, userID uint, role string) (string, error) {
	if s.create != nil {
		return s.create(ctx, userID, role)
	}
	return "test-token", nil
}

func (s *stubSessionService) Get(ctx context.Context, token string) (*service.Session, error) {
	if s.get != nil {
		return s.get(ctx, token)
	}
	return nil, nil
}

func (s *stubSessionService) Delete(ctx context.Context, token string) error {
	s.deletions = append(s.deletions, token)
	if s.deleteFn != nil {
		return s.deleteFn(ctx, token)
	}
	return nil
}

type stubAuditService struct {
	actions []string
}

func (s *stubAuditService) Record(ctx context.Context, userID *uint, action string, metadata entity.JSON) {
	s.actions = append(s.actions, action)
}
