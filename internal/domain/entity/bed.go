package entity

import (
	"strings"
	"time"
)

// BedStatus represents the status of a bed
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "Available"
	BedStatusOccupied    BedStatus = "Occupied"
	BedStatusCleaning    BedStatus = "Cleaning"
	BedStatusMaintenance BedStatus = "Maintenance"
)

// ParseBedStatus matches a status case-insensitively. ok is false for unknown values.
func ParseBedStatus(s string) (BedStatus, bool) {
	for _, st := range []BedStatus{BedStatusAvailable, BedStatusOccupied, BedStatusCleaning, BedStatusMaintenance} {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

// Bed is a physical bed in a ward.
// Status is Occupied exactly when PatientID is set; the database enforces this
// with a check constraint.
type Bed struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Number        string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"`
	Ward          string     `gorm:"type:varchar(100);not null;index" json:"ward"`
	Status        BedStatus  `gorm:"type:varchar(20);not null;default:'Available';index" json:"status"`
	PatientID     *int       `gorm:"uniqueIndex" json:"patient_id"`
	AssignedNurse string     `gorm:"type:varchar(200)" json:"assigned_nurse"`
	LastCleaned   *time.Time `json:"last_cleaned"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Bed) TableName() string {
	return "beds"
}

// IsAvailable checks if the bed can take a patient
func (b *Bed) IsAvailable() bool {
	return b.Status == BedStatusAvailable && b.PatientID == nil
}

// IsOccupied checks if a patient is in the bed
func (b *Bed) IsOccupied() bool {
	return b.PatientID != nil
}

// IsConsistent checks the occupancy invariant
func (b *Bed) IsConsistent() bool {
	return (b.Status == BedStatusOccupied) == (b.PatientID != nil)
}

// WardOccupancy is an aggregate row of bed counts per ward
type WardOccupancy struct {
	Ward      string
	Total     int64
	Occupied  int64
	Available int64
}
