package dto

import "time"

type CreateAlertRequest struct {
	Severity   string `json:"severity" validate:"required,oneof=critical high medium low"`
	Title      string `json:"title" validate:"required,notblank,max=200"`
	Message    string `json:"message" validate:"required"`
	Ward       string `json:"ward" validate:"omitempty,max=100"`
	Bed        string `json:"bed" validate:"omitempty,max=20"`
	Patient    string `json:"patient" validate:"omitempty,max=200"`
	ReportedBy string `json:"reported_by" validate:"omitempty,max=200"`
}

type AcknowledgeAlertRequest struct {
	AcknowledgedBy string `json:"acknowledged_by" validate:"omitempty,max=200"`
}

type ResolveAlertRequest struct {
	ResolvedBy string `json:"resolved_by" validate:"omitempty,max=200"`
	Resolution string `json:"resolution"`
}

type AlertResponse struct {
	ID             int        `json:"id"`
	Severity       string     `json:"severity"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Ward           string     `json:"ward"`
	Bed            string     `json:"bed"`
	Patient        string     `json:"patient"`
	ReportedBy     string     `json:"reported_by"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy string     `json:"acknowledged_by"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	Resolved       bool       `json:"resolved"`
	ResolvedBy     string     `json:"resolved_by"`
	ResolvedAt     *time.Time `json:"resolved_at"`
	Resolution     string     `json:"resolution"`
	CreatedAt      time.Time  `json:"created_at"`
}
