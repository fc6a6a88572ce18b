package entity

import "github.com/google/uuid"

// DoctorProfile holds doctor-specific attributes
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Department     string    `gorm:"type:varchar(100)" json:"department,omitempty"`
	LicenseNumber  string    `gorm:"type:varchar(50)" json:"license_number,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
