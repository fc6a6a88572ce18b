package converter

import (
	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
)

func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               p.ID,
		Name:             p.Name,
		Age:              p.Age,
		Ward:             p.Ward,
		BedNumber:        p.BedNumber,
		ConditionNotes:   p.ConditionNotes,
		Diagnosis:        p.Diagnosis,
		Allergies:        p.Allergies,
		BloodGroup:       p.BloodGroup,
		EmergencyContact: p.EmergencyContact,
		ContactPhone:     p.ContactPhone,
		AdmissionType:    p.AdmissionType,
		Status:           p.Status,
		DoctorAssigned:   p.DoctorAssigned,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// CreatePatientRequestToEntity never copies a bed number; placement goes through bed assignment.
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	status := req.Status
	if status == "" {
		status = entity.PatientStatusStable
	}

	return &entity.Patient{
		Name:             req.Name,
		Age:              req.Age,
		Ward:             req.Ward,
		ConditionNotes:   req.ConditionNotes,
		Diagnosis:        req.Diagnosis,
		Allergies:        req.Allergies,
		BloodGroup:       req.BloodGroup,
		EmergencyContact: req.EmergencyContact,
		ContactPhone:     req.ContactPhone,
		AdmissionType:    req.AdmissionType,
		Status:           status,
		DoctorAssigned:   req.DoctorAssigned,
	}
}
