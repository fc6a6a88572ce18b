package usecase

import (
	"context"

	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
	"hospitrack/internal/domain/repository"
	"hospitrack/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetSystemStats(ctx context.Context) (*dto.SystemStatsResponse, error)
	GetBedOccupancy(ctx context.Context) (*dto.BedOccupancyResponse, error)
	GetPatientStats(ctx context.Context) (*dto.PatientStatsResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
	bedRepo     repository.BedRepository
	alertRepo   repository.AlertRepository
	statsCache  service.StatsCache
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	bedRepo repository.BedRepository,
	alertRepo repository.AlertRepository,
	statsCache service.StatsCache,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
		bedRepo:     bedRepo,
		alertRepo:   alertRepo,
		statsCache:  statsCache,
	}
}

func (u *dashboardUsecase) GetSystemStats(ctx context.Context) (*dto.SystemStatsResponse, error) {
	var cached dto.SystemStatsResponse
	if u.fromCache(ctx, service.StatsKeySystem, &cached) {
		return &cached, nil
	}

	db := u.db.WithContext(ctx)
	stats := &dto.SystemStatsResponse{}
	var err error

	if stats.TotalPatients, err = u.patientRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if stats.TotalBeds, err = u.bedRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count beds: %+v", err)
		return nil, err
	}
	if stats.AvailableBeds, err = u.bedRepo.CountByStatus(db, entity.BedStatusAvailable); err != nil {
		u.log.Warnf("Failed to count available beds: %+v", err)
		return nil, err
	}
	if stats.EmergencyAlerts, err = u.alertRepo.CountUnresolved(db); err != nil {
		u.log.Warnf("Failed to count unresolved alerts: %+v", err)
		return nil, err
	}
	if stats.StaffOnDuty, err = u.userRepo.CountStaff(db, true); err != nil {
		u.log.Warnf("Failed to count active staff: %+v", err)
		return nil, err
	}
	if stats.TotalStaff, err = u.userRepo.CountStaff(db, false); err != nil {
		u.log.Warnf("Failed to count staff: %+v", err)
		return nil, err
	}

	u.toCache(ctx, service.StatsKeySystem, stats)
	return stats, nil
}

func (u *dashboardUsecase) GetBedOccupancy(ctx context.Context) (*dto.BedOccupancyResponse, error) {
	var cached dto.BedOccupancyResponse
	if u.fromCache(ctx, service.StatsKeyBedOccupancy, &cached) {
		return &cached, nil
	}

	rows, err := u.bedRepo.OccupancyByWard(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to aggregate bed occupancy: %+v", err)
		return nil, err
	}

	result := &dto.BedOccupancyResponse{
		Wards: make([]dto.WardOccupancyResponse, 0, len(rows)),
	}
	for _, row := range rows {
		result.Wards = append(result.Wards, dto.WardOccupancyResponse{
			Ward:          row.Ward,
			Total:         row.Total,
			Occupied:      row.Occupied,
			Available:     row.Available,
			OccupancyRate: occupancyRate(row.Occupied, row.Total),
		})
		result.TotalBeds += row.Total
		result.OccupiedBeds += row.Occupied
		result.AvailableBeds += row.Available
	}
	result.OccupancyRate = occupancyRate(result.OccupiedBeds, result.TotalBeds)

	u.toCache(ctx, service.StatsKeyBedOccupancy, result)
	return result, nil
}

func (u *dashboardUsecase) GetPatientStats(ctx context.Context) (*dto.PatientStatsResponse, error) {
	var cached dto.PatientStatsResponse
	if u.fromCache(ctx, service.StatsKeyPatients, &cached) {
		return &cached, nil
	}

	db := u.db.WithContext(ctx)
	stats := &dto.PatientStatsResponse{}
	var err error

	if stats.TotalPatients, err = u.patientRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if stats.CriticalPatients, err = u.patientRepo.CountByStatus(db, entity.PatientStatusCritical); err != nil {
		u.log.Warnf("Failed to count critical patients: %+v", err)
		return nil, err
	}
	if stats.StablePatients, err = u.patientRepo.CountByStatus(db, entity.PatientStatusStable); err != nil {
		u.log.Warnf("Failed to count stable patients: %+v", err)
		return nil, err
	}

	u.toCache(ctx, service.StatsKeyPatients, stats)
	return stats, nil
}

// cache failures only cost a recompute
func (u *dashboardUsecase) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if u.statsCache == nil {
		return false
	}
	found, err := u.statsCache.Get(ctx, key, dest)
	if err != nil {
		u.log.Warnf("Failed to read %s from cache: %+v", key, err)
		return false
	}
	return found
}

func (u *dashboardUsecase) toCache(ctx context.Context, key string, value interface{}) {
	if u.statsCache == nil {
		return
	}
	if err := u.statsCache.Set(ctx, key, value); err != nil {
		u.log.Warnf("Failed to write %s to cache: %+v", key, err)
	}
}

// occupancyRate is a percentage rounded to one decimal place
func occupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(occupied).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}
