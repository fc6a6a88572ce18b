package dto

import "time"

type CreateTransferRequest struct {
	PatientID   int    `json:"patient_id" validate:"required,gt=0"`
	FromBed     string `json:"from_bed" validate:"omitempty,max=20"`
	ToBed       string `json:"to_bed" validate:"required,notblank,max=20"`
	Reason      string `json:"reason"`
	RequestedBy string `json:"requested_by" validate:"omitempty,max=200"`
}

type ApproveTransferRequest struct {
	ApprovedBy string `json:"approved_by" validate:"omitempty,max=200"`
}

type RejectTransferRequest struct {
	RejectedBy string `json:"rejected_by" validate:"omitempty,max=200"`
	Reason     string `json:"reason"`
}

type TransferResponse struct {
	ID          int        `json:"id"`
	PatientID   int        `json:"patient_id"`
	PatientName string     `json:"patient_name,omitempty"`
	FromBed     string     `json:"from_bed"`
	ToBed       string     `json:"to_bed"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	RequestedBy string     `json:"requested_by"`
	ApprovedBy  string     `json:"approved_by"`
	RejectedBy  string     `json:"rejected_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
