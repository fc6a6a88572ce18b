package repository

import (
	"hospitrack/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.Patient, error)
	FindAll(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error)
	UpdateNotes(db *gorm.DB, id int, notes string) (int64, error)
	UpdateBedNumber(db *gorm.DB, id int, bedNumber *string) error
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}
