package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindByEmail(db *gorm.DB, email string) ([]entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Exists(db *gorm.DB, id uint) (bool, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
