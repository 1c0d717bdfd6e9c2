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
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrRecordPatientInvalid  = errors.New("medical record patient does not exist")
	ErrRecordDoctorInvalid   = errors.New("medical record doctor does not exist")
)

type MedicalRecordUsecase interface {
	GetAllMedicalRecords(ctx context.Context) ([]dto.MedicalRecordResponse, error)
	CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	UpdateMedicalRecord(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMedicalRecordsByPatient(ctx context.Context, patientID uint) ([]dto.MedicalRecordResponse, error)
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) GetAllMedicalRecords(ctx context.Context) ([]dto.MedicalRecordResponse, error) {
	records, err := u.recordRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all medical records: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordsToResponses(records), nil
}

func (u *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkReferences(tx, req); err != nil {
		return nil, err
	}

	record := &entity.MedicalRecord{}
	converter.MedicalRecordRequestToEntity(req, record)

	if err := u.recordRepo.Create(tx, record); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrRecordPatientInvalid
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrRecordDoctorInvalid
		}
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &ctxUserID, entity.AuditActionMedicalRecordCreate, "medical_record", fmt.Sprint(record.ID), converter.MedicalRecordToResponse(record)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	if err := u.checkReferences(tx, req); err != nil {
		return nil, err
	}

	oldValue := converter.MedicalRecordToResponse(record)
	converter.MedicalRecordRequestToEntity(req, record)

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return nil, err
	}

	newValue := converter.MedicalRecordToResponse(record)
	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &ctxUserID, entity.AuditActionMedicalRecordUpdate, "medical_record", fmt.Sprint(record.ID), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetMedicalRecordsByPatient(ctx context.Context, patientID uint) ([]dto.MedicalRecordResponse, error) {
	records, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical records for patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.MedicalRecordsToResponses(records), nil
}

func (u *medicalRecordUsecase) checkReferences(tx *gorm.DB, req *dto.CreateMedicalRecordRequest) error {
	exists, err := u.patientRepo.Exists(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to check patient existence: %+v", err)
		return err
	}
	if !exists {
		return ErrRecordPatientInvalid
	}

	exists, err = u.doctorRepo.Exists(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to check doctor existence: %+v", err)
		return err
	}
	if !exists {
		return ErrRecordDoctorInvalid
	}

	return nil
}
