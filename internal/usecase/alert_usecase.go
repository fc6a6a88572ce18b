package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospitrack/internal/converter"
	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
	"hospitrack/internal/domain/repository"
	"hospitrack/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlertNotFound        = errors.New("alert not found")
	ErrInvalidAlertSeverity = errors.New("invalid alert severity")
)

type AlertUsecase interface {
	CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	GetAllAlerts(ctx context.Context, filter *entity.AlertFilter) ([]dto.AlertResponse, error)
	GetAlert(ctx context.Context, id int) (*dto.AlertResponse, error)
	Acknowledge(ctx context.Context, id int, req *dto.AcknowledgeAlertRequest) error
	Resolve(ctx context.Context, id int, req *dto.ResolveAlertRequest) error
}

type alertUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	alertRepo    repository.AlertRepository
	auditService service.AuditService
	statsCache   service.StatsCache
}

func NewAlertUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	alertRepo repository.AlertRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) AlertUsecase {
	return &alertUsecase{
		db:           db,
		log:          log,
		alertRepo:    alertRepo,
		auditService: auditService,
		statsCache:   statsCache,
	}
}

func (u *alertUsecase) CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	severity, ok := entity.ParseAlertSeverity(req.Severity)
	if !ok {
		return nil, ErrInvalidAlertSeverity
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	alert := &entity.EmergencyAlert{
		Severity:   severity,
		Title:      req.Title,
		Message:    req.Message,
		Ward:       req.Ward,
		Bed:        req.Bed,
		Patient:    req.Patient,
		ReportedBy: actorName(ctx, req.ReportedBy),
	}

	if err := u.alertRepo.Create(tx, alert); err != nil {
		u.log.Warnf("Failed to create alert: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionAlertCreate, "emergency_alert", strconv.Itoa(alert.ID), map[string]interface{}{
		"severity": alert.Severity,
		"title":    alert.Title,
		"ward":     alert.Ward,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if alert.Severity == entity.AlertSeverityCritical {
		u.log.Warnf("Critical alert raised in ward %q: %s", alert.Ward, alert.Title)
	}

	invalidateStats(ctx, u.statsCache, u.log)
	return converter.AlertToResponse(alert), nil
}

func (u *alertUsecase) GetAllAlerts(ctx context.Context, filter *entity.AlertFilter) ([]dto.AlertResponse, error) {
	alerts, err := u.alertRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find alerts: %+v", err)
		return nil, err
	}
	return converter.AlertsToResponses(alerts), nil
}

func (u *alertUsecase) GetAlert(ctx context.Context, id int) (*dto.AlertResponse, error) {
	alert, err := u.alertRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find alert %d: %+v", id, err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	return converter.AlertToResponse(alert), nil
}

// Acknowledge overwrites any previous acknowledgement
func (u *alertUsecase) Acknowledge(ctx context.Context, id int, req *dto.AcknowledgeAlertRequest) error {
	by := actorName(ctx, req.AcknowledgedBy)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.alertRepo.Acknowledge(tx, id, by, time.Now())
	if err != nil {
		u.log.Warnf("Failed to acknowledge alert %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionAlertAcknowledge, "emergency_alert", strconv.Itoa(id),
		nil,
		map[string]interface{}{"acknowledged": true, "acknowledged_by": by},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// Resolve does not require a prior acknowledgement
func (u *alertUsecase) Resolve(ctx context.Context, id int, req *dto.ResolveAlertRequest) error {
	by := actorName(ctx, req.ResolvedBy)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.alertRepo.Resolve(tx, id, by, req.Resolution, time.Now())
	if err != nil {
		u.log.Warnf("Failed to resolve alert %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionAlertResolve, "emergency_alert", strconv.Itoa(id),
		nil,
		map[string]interface{}{"resolved": true, "resolved_by": by, "resolution": req.Resolution},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	invalidateStats(ctx, u.statsCache, u.log)
	return nil
}
