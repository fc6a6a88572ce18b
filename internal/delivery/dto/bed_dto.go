package dto

import "time"

type CreateBedRequest struct {
	Number        string `json:"number" validate:"required,notblank,max=20"`
	Ward          string `json:"ward" validate:"required,notblank,max=100"`
	Status        string `json:"status" validate:"omitempty"`
	AssignedNurse string `json:"assigned_nurse" validate:"omitempty,max=200"`
}

type UpdateBedStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AssignBedRequest struct {
	PatientID int `json:"patient_id" validate:"required,gt=0"`
}

type BedResponse struct {
	ID            int        `json:"id"`
	Number        string     `json:"number"`
	Ward          string     `json:"ward"`
	Status        string     `json:"status"`
	PatientID     *int       `json:"patient_id"`
	PatientName   string     `json:"patient_name,omitempty"`
	AssignedNurse string     `json:"assigned_nurse"`
	LastCleaned   *time.Time `json:"last_cleaned"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
