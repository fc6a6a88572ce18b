package dto

import "time"

type CreatePatientRequest struct {
	Name             string `json:"name" validate:"required,notblank,max=200"`
	Age              int    `json:"age" validate:"gte=0,lte=150"`
	Ward             string `json:"ward" validate:"required,notblank,max=100"`
	ConditionNotes   string `json:"condition_notes"`
	Diagnosis        string `json:"diagnosis"`
	Allergies        string `json:"allergies"`
	BloodGroup       string `json:"blood_group" validate:"omitempty,max=5"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=200"`
	ContactPhone     string `json:"contact_phone" validate:"omitempty,max=20"`
	AdmissionType    string `json:"admission_type" validate:"omitempty,max=50"`
	Status           string `json:"status" validate:"omitempty,max=50"`
	DoctorAssigned   string `json:"doctor_assigned" validate:"omitempty,max=200"`
}

type UpdatePatientNotesRequest struct {
	Notes *string `json:"notes" validate:"required"`
}

type PatientResponse struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Ward             string    `json:"ward"`
	BedNumber        *string   `json:"bed_number"`
	ConditionNotes   string    `json:"condition_notes"`
	Diagnosis        string    `json:"diagnosis"`
	Allergies        string    `json:"allergies"`
	BloodGroup       string    `json:"blood_group"`
	EmergencyContact string    `json:"emergency_contact"`
	ContactPhone     string    `json:"contact_phone"`
	AdmissionType    string    `json:"admission_type"`
	Status           string    `json:"status"`
	DoctorAssigned   string    `json:"doctor_assigned"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
