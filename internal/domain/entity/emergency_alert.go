package entity

import (
	"strings"
	"time"
)

type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityLow      AlertSeverity = "low"
)

func ParseAlertSeverity(s string) (AlertSeverity, bool) {
	for _, sv := range []AlertSeverity{AlertSeverityCritical, AlertSeverityHigh, AlertSeverityMedium, AlertSeverityLow} {
		if strings.EqualFold(string(sv), strings.TrimSpace(s)) {
			return sv, true
		}
	}
	return "", false
}

// EmergencyAlert is a reported emergency. Acknowledge and resolve may be
// applied repeatedly; each call overwrites the previous actor and timestamp.
type EmergencyAlert struct {
	ID             int           `gorm:"primaryKey;autoIncrement" json:"id"`
	Severity       AlertSeverity `gorm:"type:varchar(10);not null;index" json:"severity"`
	Title          string        `gorm:"type:varchar(200);not null" json:"title"`
	Message        string        `gorm:"type:text;not null" json:"message"`
	Ward           string        `gorm:"type:varchar(100);index" json:"ward"`
	Bed            string        `gorm:"type:varchar(20)" json:"bed"`
	Patient        string        `gorm:"type:varchar(200)" json:"patient"`
	ReportedBy     string        `gorm:"type:varchar(200)" json:"reported_by"`
	Acknowledged   bool          `gorm:"not null;default:false" json:"acknowledged"`
	AcknowledgedBy string        `gorm:"type:varchar(200)" json:"acknowledged_by"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at"`
	Resolved       bool          `gorm:"not null;default:false;index" json:"resolved"`
	ResolvedBy     string        `gorm:"type:varchar(200)" json:"resolved_by"`
	ResolvedAt     *time.Time    `json:"resolved_at"`
	Resolution     string        `gorm:"type:text" json:"resolution"`
	CreatedAt      time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
}

func (EmergencyAlert) TableName() string {
	return "emergency_alerts"
}
