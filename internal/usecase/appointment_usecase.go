package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrAppointmentPatientInvalid = errors.New("appointment patient does not exist")
	ErrAppointmentDoctorInvalid  = errors.New("appointment doctor does not exist")
	ErrIllegalStatusTransition   = errors.New("illegal appointment status transition")
	ErrAppointmentCompleted      = errors.New("appointment has already been completed")
)

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID uint) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// BookAppointment creates a new appointment. The persisted status is always
// scheduled, regardless of the status value submitted on the booking path.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.patientRepo.Exists(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to check patient existence: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrAppointmentPatientInvalid
	}

	exists, err = u.doctorRepo.Exists(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to check doctor existence: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrAppointmentDoctorInvalid
	}

	appointment := converter.BookRequestToAppointment(req)

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		// FK checks above race with concurrent deletes; the constraint is the backstop
		if isForeignKeyError(err, "patient") {
			return nil, ErrAppointmentPatientInvalid
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrAppointmentDoctorInvalid
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &ctxUserID, entity.AuditActionAppointmentBook, "appointment", fmt.Sprint(appointment.ID), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID uint) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// UpdateAppointment rewrites date, status, and reason. Status changes must be
// legal transitions: a scheduled appointment may complete or cancel, terminal
// states only accept their current value.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.CanTransitionTo(entity.AppointmentStatus(req.Status)) {
		return nil, ErrIllegalStatusTransition
	}

	oldValue := converter.AppointmentToResponse(appointment)
	converter.ApplyUpdateRequest(req, appointment)

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &ctxUserID, entity.AuditActionAppointmentUpdate, "appointment", fmt.Sprint(appointment.ID), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment force-cancels a scheduled appointment. Cancelling an
// already-cancelled appointment is an idempotent success; cancelling a
// completed one is rejected.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if appointment.IsCompleted() {
		return ErrAppointmentCompleted
	}
	if appointment.IsCancelled() {
		return nil
	}

	oldValue := converter.AppointmentToResponse(appointment)

	affectedRows, err := u.appointmentRepo.Cancel(tx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		// Lost a race with another canceller; nothing left to do
		return nil
	}

	appointment.Cancel()
	newValue := converter.AppointmentToResponse(appointment)
	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &ctxUserID, entity.AuditActionAppointmentCancel, "appointment", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
