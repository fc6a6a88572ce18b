package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBedStatus(t *testing.T) {
	st, ok := ParseBedStatus(" cleaning ")
	assert.True(t, ok)
	assert.Equal(t, BedStatusCleaning, st)

	_, ok = ParseBedStatus("Broken")
	assert.False(t, ok)
}

func TestBed_IsConsistent(t *testing.T) {
	id := 3
	assert.True(t, (&Bed{Status: BedStatusAvailable}).IsConsistent())
	assert.True(t, (&Bed{Status: BedStatusOccupied, PatientID: &id}).IsConsistent())
	assert.False(t, (&Bed{Status: BedStatusOccupied}).IsConsistent())
	assert.False(t, (&Bed{Status: BedStatusCleaning, PatientID: &id}).IsConsistent())

	assert.True(t, (&Bed{Status: BedStatusAvailable}).IsAvailable())
	assert.False(t, (&Bed{Status: BedStatusMaintenance}).IsAvailable())
}

func TestParseAlertSeverity(t *testing.T) {
	sv, ok := ParseAlertSeverity("HIGH")
	assert.True(t, ok)
	assert.Equal(t, AlertSeverityHigh, sv)

	_, ok = ParseAlertSeverity("urgent")
	assert.False(t, ok)
}

func TestPatientTransfer_Status(t *testing.T) {
	assert.True(t, (&PatientTransfer{Status: TransferStatusPending}).IsPending())
	assert.False(t, (&PatientTransfer{Status: TransferStatusRejected}).IsPending())
	assert.False(t, TransferStatus("lost").IsValid())
}

func TestUser_RoleName(t *testing.T) {
	assert.Equal(t, RoleNurse, (&User{RoleID: RoleIDNurse}).RoleName())
	assert.Equal(t, "custom", (&User{RoleID: RoleIDNurse, Role: Role{RoleName: "custom"}}).RoleName())
	assert.Equal(t, "", RoleNameByID(42))
}
