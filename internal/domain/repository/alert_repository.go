package repository

import (
	"time"

	"hospitrack/internal/domain/entity"

	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(db *gorm.DB, alert *entity.EmergencyAlert) error
	FindByID(db *gorm.DB, id int) (*entity.EmergencyAlert, error)
	FindAll(db *gorm.DB, filter *entity.AlertFilter) ([]entity.EmergencyAlert, error)
	Acknowledge(db *gorm.DB, id int, by string, at time.Time) (int64, error)
	Resolve(db *gorm.DB, id int, by string, resolution string, at time.Time) (int64, error)
	CountUnresolved(db *gorm.DB) (int64, error)
}
