package converter

import (
	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
)

func AlertToResponse(a *entity.EmergencyAlert) *dto.AlertResponse {
	if a == nil {
		return nil
	}

	return &dto.AlertResponse{
		ID:             a.ID,
		Severity:       string(a.Severity),
		Title:          a.Title,
		Message:        a.Message,
		Ward:           a.Ward,
		Bed:            a.Bed,
		Patient:        a.Patient,
		ReportedBy:     a.ReportedBy,
		Acknowledged:   a.Acknowledged,
		AcknowledgedBy: a.AcknowledgedBy,
		AcknowledgedAt: a.AcknowledgedAt,
		Resolved:       a.Resolved,
		ResolvedBy:     a.ResolvedBy,
		ResolvedAt:     a.ResolvedAt,
		Resolution:     a.Resolution,
		CreatedAt:      a.CreatedAt,
	}
}

func AlertsToResponses(alerts []entity.EmergencyAlert) []dto.AlertResponse {
	responses := make([]dto.AlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = *AlertToResponse(&alerts[i])
	}
	return responses
}
