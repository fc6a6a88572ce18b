package repository

import (
	"time"

	"hospitrack/internal/domain/entity"

	"gorm.io/gorm"
)

// BedRepository mutators that change occupancy are conditional and return
// the affected row count; zero means the precondition no longer held.
type BedRepository interface {
	Create(db *gorm.DB, bed *entity.Bed) error
	FindByID(db *gorm.DB, id int) (*entity.Bed, error)
	FindByNumber(db *gorm.DB, number string) (*entity.Bed, error)
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.Bed, error)
	FindByNumbersForUpdate(db *gorm.DB, numbers []string) ([]entity.Bed, error)
	FindAll(db *gorm.DB, filter *entity.BedFilter) ([]entity.Bed, error)
	UpdateStatus(db *gorm.DB, id int, status entity.BedStatus, lastCleaned *time.Time) (int64, error)
	Occupy(db *gorm.DB, id int, patientID int) (int64, error)
	Vacate(db *gorm.DB, id int) (int64, error)
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status entity.BedStatus) (int64, error)
	OccupancyByWard(db *gorm.DB) ([]entity.WardOccupancy, error)
}
