package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Cancel(db *gorm.DB, id uint) (int64, error)
}
