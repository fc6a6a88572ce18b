package entity

import "time"

const (
	PatientStatusStable   = "Stable"
	PatientStatusCritical = "Critical"
)

// Patient is an admitted patient. BedNumber mirrors the number of the bed
// that currently holds the patient and is only written by bed assignment,
// release and transfer completion.
type Patient struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"type:varchar(200);not null" json:"name"`
	Age              int       `gorm:"not null" json:"age"`
	Ward             string    `gorm:"type:varchar(100);not null;index" json:"ward"`
	BedNumber        *string   `gorm:"type:varchar(20)" json:"bed_number"`
	ConditionNotes   string    `gorm:"type:text" json:"condition_notes"`
	Diagnosis        string    `gorm:"type:text" json:"diagnosis"`
	Allergies        string    `gorm:"type:text" json:"allergies"`
	BloodGroup       string    `gorm:"type:varchar(5)" json:"blood_group"`
	EmergencyContact string    `gorm:"type:varchar(200)" json:"emergency_contact"`
	ContactPhone     string    `gorm:"type:varchar(20)" json:"contact_phone"`
	AdmissionType    string    `gorm:"type:varchar(50)" json:"admission_type"`
	Status           string    `gorm:"type:varchar(50);not null;default:'Stable';index" json:"status"`
	DoctorAssigned   string    `gorm:"type:varchar(200)" json:"doctor_assigned"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// HasBed reports whether the patient currently occupies a bed
func (p *Patient) HasBed() bool {
	return p.BedNumber != nil && *p.BedNumber != ""
}

// CurrentBed returns the occupied bed number or "" when unplaced
func (p *Patient) CurrentBed() string {
	if p.BedNumber == nil {
		return ""
	}
	return *p.BedNumber
}
