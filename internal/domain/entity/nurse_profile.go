package entity

import "github.com/google/uuid"

// NurseProfile holds nurse-specific attributes
type NurseProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	WardAssigned       string    `gorm:"type:varchar(100);index" json:"ward_assigned,omitempty"`
	Shift              string    `gorm:"type:varchar(20)" json:"shift,omitempty"`
	CertificationLevel string    `gorm:"type:varchar(50)" json:"certification_level,omitempty"`
}

func (NurseProfile) TableName() string {
	return "nurse_profiles"
}
