package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"hospitrack/internal/domain/entity"
	"hospitrack/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- repositories ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	args := m.Called(db, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) CountStaff(db *gorm.DB, activeOnly bool) (int64, error) {
	args := m.Called(db, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) CreateDoctorProfile(db *gorm.DB, profile *entity.DoctorProfile) error {
	return m.Called(db, profile).Error(0)
}

func (m *mockProfileRepo) CreateNurseProfile(db *gorm.DB, profile *entity.NurseProfile) error {
	return m.Called(db, profile).Error(0)
}

type mockPatientRepo struct{ mock.Mock }

func (m *mockPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	if patient.ID == 0 {
		patient.ID = 1
	}
	return args.Error(0)
}

func (m *mockPatientRepo) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	args := m.Called(db, id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepo) FindByIDForUpdate(db *gorm.DB, id int) (*entity.Patient, error) {
	args := m.Called(db, id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepo) FindAll(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error) {
	args := m.Called(db, filter)
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}

func (m *mockPatientRepo) UpdateNotes(db *gorm.DB, id int, notes string) (int64, error) {
	args := m.Called(db, id, notes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPatientRepo) UpdateBedNumber(db *gorm.DB, id int, bedNumber *string) error {
	return m.Called(db, id, bedNumber).Error(0)
}

func (m *mockPatientRepo) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPatientRepo) CountByStatus(db *gorm.DB, status string) (int64, error) {
	args := m.Called(db, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockBedRepo struct{ mock.Mock }

func (m *mockBedRepo) Create(db *gorm.DB, bed *entity.Bed) error {
	args := m.Called(db, bed)
	if bed.ID == 0 {
		bed.ID = 1
	}
	return args.Error(0)
}

func (m *mockBedRepo) FindByID(db *gorm.DB, id int) (*entity.Bed, error) {
	args := m.Called(db, id)
	bed, _ := args.Get(0).(*entity.Bed)
	return bed, args.Error(1)
}

func (m *mockBedRepo) FindByNumber(db *gorm.DB, number string) (*entity.Bed, error) {
	args := m.Called(db, number)
	bed, _ := args.Get(0).(*entity.Bed)
	return bed, args.Error(1)
}

func (m *mockBedRepo) FindByIDForUpdate(db *gorm.DB, id int) (*entity.Bed, error) {
	args := m.Called(db, id)
	bed, _ := args.Get(0).(*entity.Bed)
	return bed, args.Error(1)
}

func (m *mockBedRepo) FindByNumbersForUpdate(db *gorm.DB, numbers []string) ([]entity.Bed, error) {
	args := m.Called(db, numbers)
	beds, _ := args.Get(0).([]entity.Bed)
	return beds, args.Error(1)
}

func (m *mockBedRepo) FindAll(db *gorm.DB, filter *entity.BedFilter) ([]entity.Bed, error) {
	args := m.Called(db, filter)
	beds, _ := args.Get(0).([]entity.Bed)
	return beds, args.Error(1)
}

func (m *mockBedRepo) UpdateStatus(db *gorm.DB, id int, status entity.BedStatus, lastCleaned *time.Time) (int64, error) {
	args := m.Called(db, id, status, lastCleaned)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBedRepo) Occupy(db *gorm.DB, id int, patientID int) (int64, error) {
	args := m.Called(db, id, patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBedRepo) Vacate(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBedRepo) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBedRepo) CountByStatus(db *gorm.DB, status entity.BedStatus) (int64, error) {
	args := m.Called(db, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBedRepo) OccupancyByWard(db *gorm.DB) ([]entity.WardOccupancy, error) {
	args := m.Called(db)
	rows, _ := args.Get(0).([]entity.WardOccupancy)
	return rows, args.Error(1)
}

type mockAlertRepo struct{ mock.Mock }

func (m *mockAlertRepo) Create(db *gorm.DB, alert *entity.EmergencyAlert) error {
	args := m.Called(db, alert)
	if alert.ID == 0 {
		alert.ID = 1
	}
	return args.Error(0)
}

func (m *mockAlertRepo) FindByID(db *gorm.DB, id int) (*entity.EmergencyAlert, error) {
	args := m.Called(db, id)
	alert, _ := args.Get(0).(*entity.EmergencyAlert)
	return alert, args.Error(1)
}

func (m *mockAlertRepo) FindAll(db *gorm.DB, filter *entity.AlertFilter) ([]entity.EmergencyAlert, error) {
	args := m.Called(db, filter)
	alerts, _ := args.Get(0).([]entity.EmergencyAlert)
	return alerts, args.Error(1)
}

func (m *mockAlertRepo) Acknowledge(db *gorm.DB, id int, by string, at time.Time) (int64, error) {
	args := m.Called(db, id, by, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAlertRepo) Resolve(db *gorm.DB, id int, by string, resolution string, at time.Time) (int64, error) {
	args := m.Called(db, id, by, resolution, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAlertRepo) CountUnresolved(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type mockTransferRepo struct{ mock.Mock }

func (m *mockTransferRepo) Create(db *gorm.DB, transfer *entity.PatientTransfer) error {
	args := m.Called(db, transfer)
	if transfer.ID == 0 {
		transfer.ID = 1
	}
	return args.Error(0)
}

func (m *mockTransferRepo) FindByID(db *gorm.DB, id int) (*entity.PatientTransfer, error) {
	args := m.Called(db, id)
	transfer, _ := args.Get(0).(*entity.PatientTransfer)
	return transfer, args.Error(1)
}

func (m *mockTransferRepo) FindByIDForUpdate(db *gorm.DB, id int) (*entity.PatientTransfer, error) {
	args := m.Called(db, id)
	transfer, _ := args.Get(0).(*entity.PatientTransfer)
	return transfer, args.Error(1)
}

func (m *mockTransferRepo) FindAll(db *gorm.DB, filter *entity.TransferFilter) ([]entity.PatientTransfer, error) {
	args := m.Called(db, filter)
	transfers, _ := args.Get(0).([]entity.PatientTransfer)
	return transfers, args.Error(1)
}

func (m *mockTransferRepo) Complete(db *gorm.DB, id int, approvedBy string, at time.Time) (int64, error) {
	args := m.Called(db, id, approvedBy, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransferRepo) Reject(db *gorm.DB, id int, rejectedBy string, reason string) (int64, error) {
	args := m.Called(db, id, rejectedBy, reason)
	return args.Get(0).(int64), args.Error(1)
}

// --- services ---

type mockAuditService struct{ mock.Mock }

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, newValue).Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue).Error(0)
}

// anyAudit accepts every audit write
func anyAudit() *mockAuditService {
	a := &mockAuditService{}
	a.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	a.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return a
}

type mockStatsCache struct{ mock.Mock }

func (m *mockStatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockStatsCache) Set(ctx context.Context, key string, value interface{}) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockStatsCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockTokenStore struct{ mock.Mock }

func (m *mockTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenType, userID, tokenID, ttl).Error(0)
}

func (m *mockTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenType, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	return m.Called(ctx, tokenType, userID, tokenID).Error(0)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
