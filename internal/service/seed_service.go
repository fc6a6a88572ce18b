package service

import (
	"context"
	"fmt"

	"hospitrack/internal/domain/entity"
	"hospitrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Email    string
	Password string
	FullName string
	RoleID   int
	Doctor   *entity.DoctorProfile
	Nurse    *entity.NurseProfile
}

var defaultUsers = []seedUser{
	{
		Email:    "admin@hospital.com",
		Password: "admin123",
		FullName: "Admin User",
		RoleID:   entity.RoleIDAdmin,
	},
	{
		Email:    "doctor@hospital.com",
		Password: "doctor123",
		FullName: "Dr. Smith",
		RoleID:   entity.RoleIDDoctor,
		Doctor:   &entity.DoctorProfile{Specialization: "Cardiology", Department: "Cardiology", LicenseNumber: "DOC001"},
	},
	{
		Email:    "nurse@hospital.com",
		Password: "nurse123",
		FullName: "Nurse Johnson",
		RoleID:   entity.RoleIDNurse,
		Nurse:    &entity.NurseProfile{WardAssigned: "ICU", Shift: "Day", CertificationLevel: "RN"},
	},
}

var sampleBeds = []entity.Bed{
	{Number: "101", Ward: "ICU"},
	{Number: "102", Ward: "ICU"},
	{Number: "103", Ward: "ICU"},
	{Number: "201", Ward: "General"},
	{Number: "202", Ward: "General"},
	{Number: "203", Ward: "General"},
	{Number: "301", Ward: "Emergency"},
	{Number: "302", Ward: "Emergency"},
}

// SeedService provisions demo accounts and beds. Running it twice is a no-op.
type SeedService struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	bedRepo     repository.BedRepository
	statsCache  StatsCache
}

func NewSeedService(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	bedRepo repository.BedRepository,
	statsCache StatsCache,
) *SeedService {
	return &SeedService{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		bedRepo:     bedRepo,
		statsCache:  statsCache,
	}
}

func (s *SeedService) Seed(ctx context.Context) error {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	users, err := s.seedUsers(tx)
	if err != nil {
		return err
	}
	beds, err := s.seedBeds(tx)
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit seed transaction: %+v", err)
		return err
	}

	s.log.Infof("Seed completed: users=%d beds=%d", users, beds)

	if s.statsCache != nil && users+beds > 0 {
		if err := s.statsCache.Invalidate(ctx); err != nil {
			s.log.Warnf("Failed to invalidate dashboard stats: %+v", err)
		}
	}
	return nil
}

func (s *SeedService) seedUsers(tx *gorm.DB) (int, error) {
	created := 0
	for _, su := range defaultUsers {
		exists, err := s.userRepo.ExistsByEmail(tx, su.Email)
		if err != nil {
			return created, fmt.Errorf("check user %s: %w", su.Email, err)
		}
		if exists {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}

		user := &entity.User{
			Email:    su.Email,
			Password: string(hashed),
			FullName: su.FullName,
			RoleID:   su.RoleID,
			IsActive: true,
		}
		if err := s.userRepo.Create(tx, user); err != nil {
			return created, fmt.Errorf("create user %s: %w", su.Email, err)
		}

		if su.Doctor != nil {
			profile := *su.Doctor
			profile.UserID = user.ID
			if err := s.profileRepo.CreateDoctorProfile(tx, &profile); err != nil {
				return created, fmt.Errorf("create doctor profile %s: %w", su.Email, err)
			}
		}
		if su.Nurse != nil {
			profile := *su.Nurse
			profile.UserID = user.ID
			if err := s.profileRepo.CreateNurseProfile(tx, &profile); err != nil {
				return created, fmt.Errorf("create nurse profile %s: %w", su.Email, err)
			}
		}

		s.log.Infof("Seeded %s account %s", entity.RoleNameByID(su.RoleID), su.Email)
		created++
	}
	return created, nil
}

func (s *SeedService) seedBeds(tx *gorm.DB) (int, error) {
	created := 0
	for _, sb := range sampleBeds {
		existing, err := s.bedRepo.FindByNumber(tx, sb.Number)
		if err != nil {
			return created, fmt.Errorf("check bed %s: %w", sb.Number, err)
		}
		if existing != nil {
			continue
		}

		bed := sb
		bed.Status = entity.BedStatusAvailable
		if err := s.bedRepo.Create(tx, &bed); err != nil {
			return created, fmt.Errorf("create bed %s: %w", sb.Number, err)
		}
		created++
	}
	return created, nil
}
