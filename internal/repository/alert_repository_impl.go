package repository

import (
	"errors"
	"time"

	"hospitrack/internal/domain/entity"
	domainRepo "hospitrack/internal/domain/repository"

	"gorm.io/gorm"
)

type alertRepository struct{}

func NewAlertRepository() domainRepo.AlertRepository {
	return &alertRepository{}
}

func (r *alertRepository) Create(db *gorm.DB, alert *entity.EmergencyAlert) error {
	return db.Create(alert).Error
}

func (r *alertRepository) FindByID(db *gorm.DB, id int) (*entity.EmergencyAlert, error) {
	var alert entity.EmergencyAlert
	err := db.Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

// FindAll returns alerts newest first
func (r *alertRepository) FindAll(db *gorm.DB, filter *entity.AlertFilter) ([]entity.EmergencyAlert, error) {
	query := db.Model(&entity.EmergencyAlert{})

	if filter != nil {
		if filter.Ward != "" {
			query = query.Where("LOWER(ward) = LOWER(?)", filter.Ward)
		}
		if filter.Severity != "" {
			query = query.Where("LOWER(severity) = LOWER(?)", filter.Severity)
		}
		if filter.Resolved != nil {
			query = query.Where("resolved = ?", *filter.Resolved)
		}
	}

	var alerts []entity.EmergencyAlert
	err := query.Order("created_at DESC, id DESC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// Acknowledge overwrites any previous acknowledgement
func (r *alertRepository) Acknowledge(db *gorm.DB, id int, by string, at time.Time) (int64, error) {
	result := db.Model(&entity.EmergencyAlert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"acknowledged":    true,
			"acknowledged_by": by,
			"acknowledged_at": at,
		})
	return result.RowsAffected, result.Error
}

// Resolve overwrites any previous resolution, independent of acknowledgement
func (r *alertRepository) Resolve(db *gorm.DB, id int, by string, resolution string, at time.Time) (int64, error) {
	result := db.Model(&entity.EmergencyAlert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_by": by,
			"resolved_at": at,
			"resolution":  resolution,
		})
	return result.RowsAffected, result.Error
}

func (r *alertRepository) CountUnresolved(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&entity.EmergencyAlert{}).Where("resolved = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
