package entity

import "time"

// TransferStatus represents the state of a transfer request
type TransferStatus string

const (
	TransferStatusPending TransferStatus = "pending"
	// TransferStatusApproved is never persisted: approval completes the move in the same step.
	TransferStatusApproved  TransferStatus = "approved"
	TransferStatusRejected  TransferStatus = "rejected"
	TransferStatusCompleted TransferStatus = "completed"
)

func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusPending, TransferStatusApproved, TransferStatusRejected, TransferStatusCompleted:
		return true
	}
	return false
}

// PatientTransfer is a request to move a patient between beds.
// FromBed and ToBed hold bed numbers.
type PatientTransfer struct {
	ID          int            `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int            `gorm:"not null;index" json:"patient_id"`
	FromBed     string         `gorm:"type:varchar(20)" json:"from_bed"`
	ToBed       string         `gorm:"type:varchar(20);not null" json:"to_bed"`
	Reason      string         `gorm:"type:text" json:"reason"`
	Status      TransferStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RequestedBy string         `gorm:"type:varchar(200)" json:"requested_by"`
	ApprovedBy  string         `gorm:"type:varchar(200)" json:"approved_by"`
	RejectedBy  string         `gorm:"type:varchar(200)" json:"rejected_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	CompletedAt *time.Time     `json:"completed_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (PatientTransfer) TableName() string {
	return "patient_transfers"
}

// IsPending checks if the transfer can still be approved or rejected
func (t *PatientTransfer) IsPending() bool {
	return t.Status == TransferStatusPending
}
