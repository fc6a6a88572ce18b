package repository

import (
	"errors"

	"hospitrack/internal/domain/entity"
	domainRepo "hospitrack/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPatientListLimit = 100
	MaxPatientListLimit     = 500
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByIDForUpdate(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindAll returns newest patients first. Limit is clamped to MaxPatientListLimit.
func (r *patientRepository) FindAll(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error) {
	limit := DefaultPatientListLimit
	query := db.Model(&entity.Patient{})

	if filter != nil {
		if filter.Ward != "" {
			query = query.Where("LOWER(ward) = LOWER(?)", filter.Ward)
		}
		if filter.Limit > 0 {
			limit = filter.Limit
		}
	}
	if limit > MaxPatientListLimit {
		limit = MaxPatientListLimit
	}

	var patients []entity.Patient
	err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) UpdateNotes(db *gorm.DB, id int, notes string) (int64, error) {
	result := db.Model(&entity.Patient{}).Where("id = ?", id).Update("condition_notes", notes)
	return result.RowsAffected, result.Error
}

// UpdateBedNumber sets or clears (nil) the bed mirror
func (r *patientRepository) UpdateBedNumber(db *gorm.DB, id int, bedNumber *string) error {
	var value interface{}
	if bedNumber != nil {
		value = *bedNumber
	}
	return db.Model(&entity.Patient{}).Where("id = ?", id).Update("bed_number", value).Error
}

func (r *patientRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&entity.Patient{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *patientRepository) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var count int64
	if err := db.Model(&entity.Patient{}).Where("LOWER(status) = LOWER(?)", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
