package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
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
	ErrTransferNotFound   = errors.New("transfer not found")
	ErrTransferNotPending = errors.New("transfer is no longer pending")
	ErrTransferStale      = errors.New("patient is no longer in the transfer's source bed")
	ErrSameBedTransfer    = errors.New("source and destination bed are the same")
)

type TransferUsecase interface {
	RequestTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*dto.TransferResponse, error)
	GetAllTransfers(ctx context.Context, filter *entity.TransferFilter) ([]dto.TransferResponse, error)
	GetTransfer(ctx context.Context, id int) (*dto.TransferResponse, error)
	Approve(ctx context.Context, id int, req *dto.ApproveTransferRequest) error
	Reject(ctx context.Context, id int, req *dto.RejectTransferRequest) error
}

type transferUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	transferRepo repository.TransferRepository
	bedRepo      repository.BedRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	statsCache   service.StatsCache
}

func NewTransferUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transferRepo repository.TransferRepository,
	bedRepo repository.BedRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) TransferUsecase {
	return &transferUsecase{
		db:           db,
		log:          log,
		transferRepo: transferRepo,
		bedRepo:      bedRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		statsCache:   statsCache,
	}
}

// RequestTransfer records a pending move. The destination bed is checked but
// not reserved; approval re-validates it under lock. Nothing is stored when a
// check fails.
func (u *transferUsecase) RequestTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	toBedNumber := strings.TrimSpace(req.ToBed)
	toBed, err := u.bedRepo.FindByNumber(tx, toBedNumber)
	if err != nil {
		u.log.Warnf("Failed to find bed %s: %+v", toBedNumber, err)
		return nil, err
	}
	if toBed == nil {
		return nil, ErrBedNotFound
	}

	fromBed := strings.TrimSpace(req.FromBed)
	if fromBed == "" {
		fromBed = patient.CurrentBed()
	}
	if fromBed == toBed.Number {
		return nil, ErrSameBedTransfer
	}
	if !toBed.IsAvailable() {
		return nil, ErrBedNotAvailable
	}

	transfer := &entity.PatientTransfer{
		PatientID:   patient.ID,
		FromBed:     fromBed,
		ToBed:       toBed.Number,
		Reason:      req.Reason,
		Status:      entity.TransferStatusPending,
		RequestedBy: actorName(ctx, req.RequestedBy),
	}

	if err := u.transferRepo.Create(tx, transfer); err != nil {
		u.log.Warnf("Failed to create transfer: %+v", err)
		return nil, err
	}
	transfer.Patient = *patient

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionTransferRequest, "patient_transfer", strconv.Itoa(transfer.ID), map[string]interface{}{
		"patient_id": transfer.PatientID,
		"from_bed":   transfer.FromBed,
		"to_bed":     transfer.ToBed,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TransferToResponse(transfer), nil
}

func (u *transferUsecase) GetAllTransfers(ctx context.Context, filter *entity.TransferFilter) ([]dto.TransferResponse, error) {
	transfers, err := u.transferRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find transfers: %+v", err)
		return nil, err
	}
	return converter.TransfersToResponses(transfers), nil
}

func (u *transferUsecase) GetTransfer(ctx context.Context, id int) (*dto.TransferResponse, error) {
	transfer, err := u.transferRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find transfer %d: %+v", id, err)
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}
	return converter.TransferToResponse(transfer), nil
}

// Approve completes the move in one transaction: the source bed is freed, the
// destination occupied, the patient's bed number updated and the transfer
// marked completed. Lock order is transfer, beds by id, patient.
func (u *transferUsecase) Approve(ctx context.Context, id int, req *dto.ApproveTransferRequest) error {
	approvedBy := actorName(ctx, req.ApprovedBy)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	transfer, err := u.lockPending(tx, id)
	if err != nil {
		return err
	}

	numbers := []string{transfer.ToBed}
	if transfer.FromBed != "" {
		numbers = append(numbers, transfer.FromBed)
	}
	beds, err := u.bedRepo.FindByNumbersForUpdate(tx, numbers)
	if err != nil {
		u.log.Warnf("Failed to lock beds for transfer %d: %+v", id, err)
		return err
	}

	var fromBed, toBed *entity.Bed
	for i := range beds {
		switch beds[i].Number {
		case transfer.ToBed:
			toBed = &beds[i]
		case transfer.FromBed:
			fromBed = &beds[i]
		}
	}
	if toBed == nil {
		return ErrBedNotFound
	}
	if transfer.FromBed != "" && fromBed == nil {
		return ErrTransferStale
	}

	patient, err := u.patientRepo.FindByIDForUpdate(tx, transfer.PatientID)
	if err != nil {
		u.log.Warnf("Failed to lock patient %d: %+v", transfer.PatientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if patient.CurrentBed() != transfer.FromBed {
		return ErrTransferStale
	}
	if fromBed != nil && (fromBed.PatientID == nil || *fromBed.PatientID != patient.ID) {
		return ErrTransferStale
	}
	if !toBed.IsAvailable() {
		return ErrBedNotAvailable
	}

	if fromBed != nil {
		affected, err := u.bedRepo.Vacate(tx, fromBed.ID)
		if err != nil {
			if isCheckViolation(err, bedOccupancyCheck) {
				return ErrTransferStale
			}
			u.log.Warnf("Failed to vacate bed %s: %+v", fromBed.Number, err)
			return err
		}
		if affected == 0 {
			return ErrTransferStale
		}
	}

	affected, err := u.bedRepo.Occupy(tx, toBed.ID, patient.ID)
	if err != nil {
		if isCheckViolation(err, bedOccupancyCheck) {
			return ErrBedNotAvailable
		}
		u.log.Warnf("Failed to occupy bed %s: %+v", toBed.Number, err)
		return err
	}
	if affected == 0 {
		return ErrBedNotAvailable
	}

	if err := u.patientRepo.UpdateBedNumber(tx, patient.ID, &toBed.Number); err != nil {
		u.log.Warnf("Failed to update patient %d bed number: %+v", patient.ID, err)
		return err
	}

	affected, err = u.transferRepo.Complete(tx, transfer.ID, approvedBy, time.Now())
	if err != nil {
		u.log.Warnf("Failed to complete transfer %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrTransferNotPending
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionTransferApprove, "patient_transfer", strconv.Itoa(id),
		map[string]interface{}{"status": transfer.Status, "bed_number": transfer.FromBed},
		map[string]interface{}{"status": entity.TransferStatusCompleted, "bed_number": toBed.Number, "approved_by": approvedBy},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Transfer %d completed: patient %d moved %q -> %q", id, patient.ID, transfer.FromBed, toBed.Number)
	invalidateStats(ctx, u.statsCache, u.log)
	return nil
}

// Reject closes a pending transfer without touching beds or the patient
func (u *transferUsecase) Reject(ctx context.Context, id int, req *dto.RejectTransferRequest) error {
	rejectedBy := actorName(ctx, req.RejectedBy)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	transfer, err := u.lockPending(tx, id)
	if err != nil {
		return err
	}

	reason := appendRejection(transfer.Reason, req.Reason)

	affected, err := u.transferRepo.Reject(tx, transfer.ID, rejectedBy, reason)
	if err != nil {
		u.log.Warnf("Failed to reject transfer %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrTransferNotPending
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionTransferReject, "patient_transfer", strconv.Itoa(id),
		map[string]interface{}{"status": transfer.Status},
		map[string]interface{}{"status": entity.TransferStatusRejected, "rejected_by": rejectedBy},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *transferUsecase) lockPending(tx *gorm.DB, id int) (*entity.PatientTransfer, error) {
	transfer, err := u.transferRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock transfer %d: %+v", id, err)
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}
	if !transfer.IsPending() {
		return nil, ErrTransferNotPending
	}
	return transfer, nil
}

func appendRejection(existing, reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return existing
	}
	if existing == "" {
		return "Rejected: " + reason
	}
	return existing + "\nRejected: " + reason
}
