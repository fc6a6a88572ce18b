package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Department     string `json:"department" validate:"omitempty,max=100"`
	LicenseNumber  string `json:"license_number" validate:"omitempty,max=50"`
}

type RegisterNurseRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=255"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	WardAssigned       string `json:"ward_assigned" validate:"omitempty,max=100"`
	Shift              string `json:"shift" validate:"omitempty,max=20"`
	CertificationLevel string `json:"certification_level" validate:"omitempty,max=50"`
}

// Response DTOs

type TokenResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	ExpiresIn int64  `json:"expires_in"`
}

type LoginResponse struct {
	Access    string       `json:"access"`
	Refresh   string       `json:"refresh"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}

// UserResponse flattens the role profile into the user object
type UserResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	IsActive           bool      `json:"is_active"`
	Specialization     string    `json:"specialization,omitempty"`
	Department         string    `json:"department,omitempty"`
	LicenseNumber      string    `json:"license_number,omitempty"`
	WardAssigned       string    `json:"ward_assigned,omitempty"`
	Shift              string    `json:"shift,omitempty"`
	CertificationLevel string    `json:"certification_level,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
