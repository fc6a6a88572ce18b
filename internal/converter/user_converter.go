package converter

import (
	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Profile attributes are included when the profile is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Name:      user.FullName,
		Email:     user.Email,
		Role:      user.RoleName(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}

	if user.DoctorProfile != nil {
		response.Specialization = user.DoctorProfile.Specialization
		response.Department = user.DoctorProfile.Department
		response.LicenseNumber = user.DoctorProfile.LicenseNumber
	}

	if user.NurseProfile != nil {
		response.WardAssigned = user.NurseProfile.WardAssigned
		response.Shift = user.NurseProfile.Shift
		response.CertificationLevel = user.NurseProfile.CertificationLevel
	}

	return response
}
