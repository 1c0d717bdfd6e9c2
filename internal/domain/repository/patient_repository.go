package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByEmail(db *gorm.DB, email string) ([]entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	Exists(db *gorm.DB, id uint) (bool, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
