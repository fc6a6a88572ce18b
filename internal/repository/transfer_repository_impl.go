package repository

import (
	"errors"
	"time"

	"hospitrack/internal/domain/entity"
	domainRepo "hospitrack/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transferRepository struct{}

func NewTransferRepository() domainRepo.TransferRepository {
	return &transferRepository{}
}

func (r *transferRepository) Create(db *gorm.DB, transfer *entity.PatientTransfer) error {
	return db.Omit(clause.Associations).Create(transfer).Error
}

func (r *transferRepository) FindByID(db *gorm.DB, id int) (*entity.PatientTransfer, error) {
	var transfer entity.PatientTransfer
	err := db.Preload("Patient").Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *transferRepository) FindByIDForUpdate(db *gorm.DB, id int) (*entity.PatientTransfer, error) {
	var transfer entity.PatientTransfer
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *transferRepository) FindAll(db *gorm.DB, filter *entity.TransferFilter) ([]entity.PatientTransfer, error) {
	query := db.Preload("Patient")

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.PatientID > 0 {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
	}

	var transfers []entity.PatientTransfer
	err := query.Order("created_at DESC, id DESC").Find(&transfers).Error
	if err != nil {
		return nil, err
	}
	return transfers, nil
}

// Complete moves a pending transfer straight to completed.
// Returns affected rows: 1 = success, 0 = no longer pending.
func (r *transferRepository) Complete(db *gorm.DB, id int, approvedBy string, at time.Time) (int64, error) {
	result := db.Model(&entity.PatientTransfer{}).
		Where("id = ? AND status = ?", id, entity.TransferStatusPending).
		Updates(map[string]interface{}{
			"status":       entity.TransferStatusCompleted,
			"approved_by":  approvedBy,
			"completed_at": at,
		})
	return result.RowsAffected, result.Error
}

// Reject stores the full reason text, already merged by the caller
func (r *transferRepository) Reject(db *gorm.DB, id int, rejectedBy string, reason string) (int64, error) {
	result := db.Model(&entity.PatientTransfer{}).
		Where("id = ? AND status = ?", id, entity.TransferStatusPending).
		Updates(map[string]interface{}{
			"status":      entity.TransferStatusRejected,
			"rejected_by": rejectedBy,
			"reason":      reason,
		})
	return result.RowsAffected, result.Error
}
