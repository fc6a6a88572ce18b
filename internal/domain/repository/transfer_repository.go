package repository

import (
	"time"

	"hospitrack/internal/domain/entity"

	"gorm.io/gorm"
)

type TransferRepository interface {
	Create(db *gorm.DB, transfer *entity.PatientTransfer) error
	FindByID(db *gorm.DB, id int) (*entity.PatientTransfer, error)
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.PatientTransfer, error)
	FindAll(db *gorm.DB, filter *entity.TransferFilter) ([]entity.PatientTransfer, error)
	Complete(db *gorm.DB, id int, approvedBy string, at time.Time) (int64, error)
	Reject(db *gorm.DB, id int, rejectedBy string, reason string) (int64, error)
}
