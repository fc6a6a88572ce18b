package converter

import (
	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
)

// BedToResponse includes the occupant name when Patient is preloaded
func BedToResponse(b *entity.Bed) *dto.BedResponse {
	if b == nil {
		return nil
	}

	response := &dto.BedResponse{
		ID:            b.ID,
		Number:        b.Number,
		Ward:          b.Ward,
		Status:        string(b.Status),
		PatientID:     b.PatientID,
		AssignedNurse: b.AssignedNurse,
		LastCleaned:   b.LastCleaned,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.Patient != nil {
		response.PatientName = b.Patient.Name
	}
	return response
}

func BedsToResponses(beds []entity.Bed) []dto.BedResponse {
	responses := make([]dto.BedResponse, len(beds))
	for i := range beds {
		responses[i] = *BedToResponse(&beds[i])
	}
	return responses
}
