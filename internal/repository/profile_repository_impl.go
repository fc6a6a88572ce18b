package repository

import (
	"hospitrack/internal/domain/entity"
	domainRepo "hospitrack/internal/domain/repository"

	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) CreateDoctorProfile(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) CreateNurseProfile(db *gorm.DB, profile *entity.NurseProfile) error {
	return db.Create(profile).Error
}
