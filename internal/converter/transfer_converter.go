package converter

import (
	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
)

func TransferToResponse(t *entity.PatientTransfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}

	return &dto.TransferResponse{
		ID:          t.ID,
		PatientID:   t.PatientID,
		PatientName: t.Patient.Name,
		FromBed:     t.FromBed,
		ToBed:       t.ToBed,
		Reason:      t.Reason,
		Status:      string(t.Status),
		RequestedBy: t.RequestedBy,
		ApprovedBy:  t.ApprovedBy,
		RejectedBy:  t.RejectedBy,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func TransfersToResponses(transfers []entity.PatientTransfer) []dto.TransferResponse {
	responses := make([]dto.TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = *TransferToResponse(&transfers[i])
	}
	return responses
}
