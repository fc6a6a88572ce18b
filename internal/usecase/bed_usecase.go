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
	ErrBedNotFound            = errors.New("bed not found")
	ErrDuplicateBedNumber     = errors.New("bed number already exists")
	ErrInvalidBedStatus       = errors.New("invalid bed status")
	ErrInvalidBedNumber       = errors.New("bed number and ward must not be blank")
	ErrBedNotAvailable        = errors.New("bed is not available")
	ErrBedNotOccupied         = errors.New("bed is not occupied")
	ErrBedOccupied            = errors.New("bed is occupied, release the patient first")
	ErrUseAssignForOccupancy  = errors.New("beds become occupied only through patient assignment")
	ErrPatientAlreadyAssigned = errors.New("patient already occupies a bed")
)

type BedUsecase interface {
	CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error)
	GetAllBeds(ctx context.Context, filter *entity.BedFilter) ([]dto.BedResponse, error)
	GetBed(ctx context.Context, id int) (*dto.BedResponse, error)
	UpdateStatus(ctx context.Context, id int, req *dto.UpdateBedStatusRequest) (*dto.BedResponse, error)
	AssignPatient(ctx context.Context, bedID int, req *dto.AssignBedRequest) error
	Release(ctx context.Context, bedID int) error
}

type bedUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bedRepo      repository.BedRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	statsCache   service.StatsCache
}

func NewBedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bedRepo repository.BedRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) BedUsecase {
	return &bedUsecase{
		db:           db,
		log:          log,
		bedRepo:      bedRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		statsCache:   statsCache,
	}
}

func (u *bedUsecase) CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error) {
	status := entity.BedStatusAvailable
	if req.Status != "" {
		parsed, ok := entity.ParseBedStatus(req.Status)
		if !ok {
			return nil, ErrInvalidBedStatus
		}
		status = parsed
	}
	if status == entity.BedStatusOccupied {
		return nil, ErrUseAssignForOccupancy
	}

	number := strings.TrimSpace(req.Number)
	ward := strings.TrimSpace(req.Ward)
	if number == "" || ward == "" {
		return nil, ErrInvalidBedNumber
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.bedRepo.FindByNumber(tx, number)
	if err != nil {
		u.log.Warnf("Failed to find bed by number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateBedNumber
	}

	bed := &entity.Bed{
		Number:        number,
		Ward:          ward,
		Status:        status,
		AssignedNurse: req.AssignedNurse,
	}
	if status == entity.BedStatusCleaning {
		now := time.Now()
		bed.LastCleaned = &now
	}

	if err := u.bedRepo.Create(tx, bed); err != nil {
		if isDuplicateKeyError(err, "number") {
			return nil, ErrDuplicateBedNumber
		}
		u.log.Warnf("Failed to create bed: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionBedCreate, "bed", strconv.Itoa(bed.ID), converter.BedToResponse(bed)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	invalidateStats(ctx, u.statsCache, u.log)
	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) GetAllBeds(ctx context.Context, filter *entity.BedFilter) ([]dto.BedResponse, error) {
	beds, err := u.bedRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find beds: %+v", err)
		return nil, err
	}
	return converter.BedsToResponses(beds), nil
}

func (u *bedUsecase) GetBed(ctx context.Context, id int) (*dto.BedResponse, error) {
	bed, err := u.bedRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find bed %d: %+v", id, err)
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}
	return converter.BedToResponse(bed), nil
}

// UpdateStatus moves a free bed between Available, Cleaning and Maintenance.
// Entering Cleaning stamps last_cleaned.
func (u *bedUsecase) UpdateStatus(ctx context.Context, id int, req *dto.UpdateBedStatusRequest) (*dto.BedResponse, error) {
	status, ok := entity.ParseBedStatus(req.Status)
	if !ok {
		return nil, ErrInvalidBedStatus
	}
	if status == entity.BedStatusOccupied {
		return nil, ErrUseAssignForOccupancy
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.bedRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock bed %d: %+v", id, err)
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}
	if bed.IsOccupied() {
		return nil, ErrBedOccupied
	}

	oldStatus := bed.Status
	var lastCleaned *time.Time
	if status == entity.BedStatusCleaning {
		now := time.Now()
		lastCleaned = &now
	}

	affected, err := u.bedRepo.UpdateStatus(tx, id, status, lastCleaned)
	if err != nil {
		if isCheckViolation(err, bedOccupancyCheck) {
			return nil, ErrBedOccupied
		}
		u.log.Warnf("Failed to update bed %d status: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrBedOccupied
	}

	bed.Status = status
	if lastCleaned != nil {
		bed.LastCleaned = lastCleaned
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionBedStatusUpdate, "bed", strconv.Itoa(id),
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": status},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	invalidateStats(ctx, u.statsCache, u.log)
	return converter.BedToResponse(bed), nil
}

// AssignPatient occupies the bed and mirrors its number onto the patient in
// one transaction. The bed row is locked before the patient row.
func (u *bedUsecase) AssignPatient(ctx context.Context, bedID int, req *dto.AssignBedRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.bedRepo.FindByIDForUpdate(tx, bedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %d: %+v", bedID, err)
		return err
	}
	if bed == nil {
		return ErrBedNotFound
	}

	patient, err := u.patientRepo.FindByIDForUpdate(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to lock patient %d: %+v", req.PatientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if !bed.IsAvailable() {
		return ErrBedNotAvailable
	}
	if patient.HasBed() {
		return ErrPatientAlreadyAssigned
	}

	affected, err := u.bedRepo.Occupy(tx, bed.ID, patient.ID)
	if err != nil {
		if isDuplicateKeyError(err, "patient_id") {
			return ErrPatientAlreadyAssigned
		}
		if isCheckViolation(err, bedOccupancyCheck) {
			return ErrBedNotAvailable
		}
		u.log.Warnf("Failed to occupy bed %d: %+v", bedID, err)
		return err
	}
	if affected == 0 {
		return ErrBedNotAvailable
	}

	if err := u.patientRepo.UpdateBedNumber(tx, patient.ID, &bed.Number); err != nil {
		if isDuplicateKeyError(err, "bed_number") {
			return ErrBedNotAvailable
		}
		u.log.Warnf("Failed to update patient %d bed number: %+v", patient.ID, err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionBedAssign, "bed", strconv.Itoa(bed.ID),
		map[string]interface{}{"status": bed.Status, "patient_id": nil},
		map[string]interface{}{"status": entity.BedStatusOccupied, "patient_id": patient.ID},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Patient %d assigned to bed %s", patient.ID, bed.Number)
	invalidateStats(ctx, u.statsCache, u.log)
	return nil
}

// Release frees the bed and clears the occupant's bed number together
func (u *bedUsecase) Release(ctx context.Context, bedID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.bedRepo.FindByIDForUpdate(tx, bedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %d: %+v", bedID, err)
		return err
	}
	if bed == nil {
		return ErrBedNotFound
	}
	if !bed.IsOccupied() {
		return ErrBedNotOccupied
	}
	patientID := *bed.PatientID
	if !bed.IsConsistent() {
		// releasing brings the row back in line
		u.log.Warnf("Bed %s has patient %d but status %s", bed.Number, patientID, bed.Status)
	}

	if _, err := u.patientRepo.FindByIDForUpdate(tx, patientID); err != nil {
		u.log.Warnf("Failed to lock patient %d: %+v", patientID, err)
		return err
	}

	affected, err := u.bedRepo.Vacate(tx, bed.ID)
	if err != nil {
		if isCheckViolation(err, bedOccupancyCheck) {
			return ErrBedNotOccupied
		}
		u.log.Warnf("Failed to vacate bed %d: %+v", bedID, err)
		return err
	}
	if affected == 0 {
		return ErrBedNotOccupied
	}

	if err := u.patientRepo.UpdateBedNumber(tx, patientID, nil); err != nil {
		u.log.Warnf("Failed to clear patient %d bed number: %+v", patientID, err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionBedRelease, "bed", strconv.Itoa(bed.ID),
		map[string]interface{}{"status": bed.Status, "patient_id": patientID},
		map[string]interface{}{"status": entity.BedStatusAvailable, "patient_id": nil},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Bed %s released (patient %d)", bed.Number, patientID)
	invalidateStats(ctx, u.statsCache, u.log)
	return nil
}
