package repository

import (
	"hospitrack/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	CreateDoctorProfile(db *gorm.DB, profile *entity.DoctorProfile) error
	CreateNurseProfile(db *gorm.DB, profile *entity.NurseProfile) error
}
