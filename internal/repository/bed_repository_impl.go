package repository

import (
	"errors"
	"time"

	"hospitrack/internal/domain/entity"
	domainRepo "hospitrack/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bedRepository struct{}

func NewBedRepository() domainRepo.BedRepository {
	return &bedRepository{}
}

func (r *bedRepository) Create(db *gorm.DB, bed *entity.Bed) error {
	return db.Omit(clause.Associations).Create(bed).Error
}

func (r *bedRepository) FindByID(db *gorm.DB, id int) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Preload("Patient").Where("id = ?", id).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

func (r *bedRepository) FindByNumber(db *gorm.DB, number string) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Where("number = ?", number).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

// FindByIDForUpdate locks the bed row until the surrounding transaction ends
func (r *bedRepository) FindByIDForUpdate(db *gorm.DB, id int) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

// FindByNumbersForUpdate locks several beds in ascending id order so that
// concurrent transfers always acquire row locks in the same sequence.
func (r *bedRepository) FindByNumbersForUpdate(db *gorm.DB, numbers []string) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number IN ?", numbers).
		Order("id ASC").
		Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

func (r *bedRepository) FindAll(db *gorm.DB, filter *entity.BedFilter) ([]entity.Bed, error) {
	var beds []entity.Bed
	query := db.Preload("Patient")

	if filter != nil {
		if filter.Ward != "" {
			query = query.Where("LOWER(ward) = LOWER(?)", filter.Ward)
		}
		if filter.Status != "" {
			query = query.Where("LOWER(status) = LOWER(?)", filter.Status)
		}
	}

	err := query.Order("ward ASC, number ASC").Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

// UpdateStatus only touches unoccupied beds
func (r *bedRepository) UpdateStatus(db *gorm.DB, id int, status entity.BedStatus, lastCleaned *time.Time) (int64, error) {
	updates := map[string]interface{}{"status": status}
	if lastCleaned != nil {
		updates["last_cleaned"] = *lastCleaned
	}
	result := db.Model(&entity.Bed{}).
		Where("id = ? AND patient_id IS NULL", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Occupy places a patient only while the bed is still available.
// Returns affected rows: 1 = placed, 0 = bed was taken or not available.
func (r *bedRepository) Occupy(db *gorm.DB, id int, patientID int) (int64, error) {
	result := db.Model(&entity.Bed{}).
		Where("id = ? AND status = ? AND patient_id IS NULL", id, entity.BedStatusAvailable).
		Updates(map[string]interface{}{
			"status":     entity.BedStatusOccupied,
			"patient_id": patientID,
		})
	return result.RowsAffected, result.Error
}

// Vacate frees an occupied bed. Returns 0 when the bed had no occupant.
func (r *bedRepository) Vacate(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Bed{}).
		Where("id = ? AND patient_id IS NOT NULL", id).
		Updates(map[string]interface{}{
			"status":     entity.BedStatusAvailable,
			"patient_id": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *bedRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&entity.Bed{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bedRepository) CountByStatus(db *gorm.DB, status entity.BedStatus) (int64, error) {
	var count int64
	if err := db.Model(&entity.Bed{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bedRepository) OccupancyByWard(db *gorm.DB) ([]entity.WardOccupancy, error) {
	var rows []entity.WardOccupancy
	err := db.Model(&entity.Bed{}).
		Select(`
			ward,
			COUNT(*) AS total,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS occupied,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS available
		`, entity.BedStatusOccupied, entity.BedStatusAvailable).
		Group("ward").
		Order("ward ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
