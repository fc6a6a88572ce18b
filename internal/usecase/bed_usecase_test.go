package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/delivery/http/middleware"
	"hospitrack/internal/domain/entity"
	"hospitrack/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func staffCtx(role string) context.Context {
	return middleware.WithClaims(context.Background(), &jwt.Claims{
		UserID:  uuid.New(),
		Email:   "nurse@hospital.com",
		Name:    "Nurse Johnson",
		Role:    role,
		TokenID: "token-1",
	})
}

type bedFixture struct {
	bedRepo     *mockBedRepo
	patientRepo *mockPatientRepo
	cache       *mockStatsCache
	uc          BedUsecase
}

func newBedFixture(t *testing.T) (*bedFixture, func()) {
	db, sqlMock := newMockDB(t)
	f := &bedFixture{
		bedRepo:     &mockBedRepo{},
		patientRepo: &mockPatientRepo{},
		cache:       &mockStatsCache{},
	}
	f.cache.On("Invalidate", mock.Anything).Return(nil).Maybe()
	f.uc = NewBedUsecase(db, newTestLogger(), f.bedRepo, f.patientRepo, anyAudit(), f.cache)

	return f, func() {
		f.bedRepo.AssertExpectations(t)
		f.patientRepo.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	}
}

func TestBedUsecase_AssignPatient(t *testing.T) {
	t.Run("occupies bed and mirrors number onto patient", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		cache := &mockStatsCache{}

		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Ward: "ICU", Status: entity.BedStatusAvailable}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).
			Return(&entity.Patient{ID: 7, Name: "John Doe", Ward: "ICU"}, nil)
		bedRepo.On("Occupy", mock.Anything, 1, 7).Return(int64(1), nil)
		patientRepo.On("UpdateBedNumber", mock.Anything, 7, mock.MatchedBy(func(s *string) bool {
			return s != nil && *s == "101"
		})).Return(nil)
		cache.On("Invalidate", mock.Anything).Return(nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), cache)
		err := uc.AssignPatient(staffCtx(entity.RoleNurse), 1, &dto.AssignBedRequest{PatientID: 7})

		require.NoError(t, err)
		bedRepo.AssertExpectations(t)
		patientRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("bed not found", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 99).Return(nil, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 99, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrBedNotFound)
		patientRepo.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("patient not found", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusAvailable}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).Return(nil, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 1, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrPatientNotFound)
		bedRepo.AssertNotCalled(t, "Occupy", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("occupied bed is rejected and nothing is written", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusOccupied, PatientID: intPtr(3)}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).
			Return(&entity.Patient{ID: 7, Name: "John Doe"}, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 1, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrBedNotAvailable)
		bedRepo.AssertNotCalled(t, "Occupy", mock.Anything, mock.Anything, mock.Anything)
		patientRepo.AssertNotCalled(t, "UpdateBedNumber", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("bed under maintenance is not available", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 2).
			Return(&entity.Bed{ID: 2, Number: "102", Status: entity.BedStatusMaintenance}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).
			Return(&entity.Patient{ID: 7}, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 2, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrBedNotAvailable)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("patient already in another bed", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 2).
			Return(&entity.Bed{ID: 2, Number: "102", Status: entity.BedStatusAvailable}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).
			Return(&entity.Patient{ID: 7, BedNumber: strPtr("101")}, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 2, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrPatientAlreadyAssigned)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("losing the conditional update reports not available", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusAvailable}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).
			Return(&entity.Patient{ID: 7}, nil)
		bedRepo.On("Occupy", mock.Anything, 1, 7).Return(int64(0), nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 1, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrBedNotAvailable)
		patientRepo.AssertNotCalled(t, "UpdateBedNumber", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("unique violation on patient_id maps to already assigned", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusAvailable}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).
			Return(&entity.Patient{ID: 7}, nil)
		bedRepo.On("Occupy", mock.Anything, 1, 7).
			Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "idx_beds_patient_id"})

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 1, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrPatientAlreadyAssigned)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestBedUsecase_Release(t *testing.T) {
	t.Run("frees bed and clears patient bed number", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		cache := &mockStatsCache{}

		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusOccupied, PatientID: intPtr(7)}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).
			Return(&entity.Patient{ID: 7, BedNumber: strPtr("101")}, nil)
		bedRepo.On("Vacate", mock.Anything, 1).Return(int64(1), nil)
		patientRepo.On("UpdateBedNumber", mock.Anything, 7, mock.MatchedBy(func(s *string) bool {
			return s == nil
		})).Return(nil)
		cache.On("Invalidate", mock.Anything).Return(nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), cache)
		err := uc.Release(context.Background(), 1)

		require.NoError(t, err)
		bedRepo.AssertExpectations(t)
		patientRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("empty bed cannot be released", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusAvailable}, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), &mockStatsCache{})
		err := uc.Release(context.Background(), 1)

		assert.ErrorIs(t, err, ErrBedNotOccupied)
		bedRepo.AssertNotCalled(t, "Vacate", mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("bed not found", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 5).Return(nil, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), &mockStatsCache{})
		err := uc.Release(context.Background(), 5)

		assert.ErrorIs(t, err, ErrBedNotFound)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestBedUsecase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f, verify := newBedFixture(t)
		defer verify()

		_, err := f.uc.UpdateStatus(context.Background(), 1, &dto.UpdateBedStatusRequest{Status: "Broken"})
		assert.ErrorIs(t, err, ErrInvalidBedStatus)
	})

	t.Run("occupied only through assignment", func(t *testing.T) {
		f, verify := newBedFixture(t)
		defer verify()

		_, err := f.uc.UpdateStatus(context.Background(), 1, &dto.UpdateBedStatusRequest{Status: "occupied"})
		assert.ErrorIs(t, err, ErrUseAssignForOccupancy)
	})

	t.Run("cleaning stamps last_cleaned", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		bedRepo := &mockBedRepo{}
		cache := &mockStatsCache{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 3).
			Return(&entity.Bed{ID: 3, Number: "103", Status: entity.BedStatusAvailable}, nil)
		bedRepo.On("UpdateStatus", mock.Anything, 3, entity.BedStatusCleaning, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil && !ts.IsZero()
		})).Return(int64(1), nil)
		cache.On("Invalidate", mock.Anything).Return(nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), cache)
		bed, err := uc.UpdateStatus(context.Background(), 3, &dto.UpdateBedStatusRequest{Status: "cleaning"})

		require.NoError(t, err)
		assert.Equal(t, "Cleaning", bed.Status)
		assert.NotNil(t, bed.LastCleaned)
		bedRepo.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("maintenance leaves last_cleaned alone", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		bedRepo := &mockBedRepo{}
		cache := &mockStatsCache{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 3).
			Return(&entity.Bed{ID: 3, Number: "103", Status: entity.BedStatusCleaning}, nil)
		bedRepo.On("UpdateStatus", mock.Anything, 3, entity.BedStatusMaintenance, mock.MatchedBy(func(ts *time.Time) bool {
			return ts == nil
		})).Return(int64(1), nil)
		cache.On("Invalidate", mock.Anything).Return(nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), cache)
		_, err := uc.UpdateStatus(context.Background(), 3, &dto.UpdateBedStatusRequest{Status: "Maintenance"})

		require.NoError(t, err)
		bedRepo.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("occupied bed must be released first", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusOccupied, PatientID: intPtr(7)}, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), &mockStatsCache{})
		_, err := uc.UpdateStatus(context.Background(), 1, &dto.UpdateBedStatusRequest{Status: "Cleaning"})

		assert.ErrorIs(t, err, ErrBedOccupied)
		bedRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestBedUsecase_CreateBed(t *testing.T) {
	t.Run("defaults to available", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		bedRepo := &mockBedRepo{}
		cache := &mockStatsCache{}
		bedRepo.On("FindByNumber", mock.Anything, "101").Return(nil, nil)
		bedRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Bed) bool {
			return b.Number == "101" && b.Ward == "ICU" && b.Status == entity.BedStatusAvailable && b.PatientID == nil
		})).Return(nil)
		cache.On("Invalidate", mock.Anything).Return(nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), cache)
		bed, err := uc.CreateBed(context.Background(), &dto.CreateBedRequest{Number: " 101 ", Ward: "ICU"})

		require.NoError(t, err)
		assert.Equal(t, "Available", bed.Status)
		bedRepo.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate number", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		bedRepo.On("FindByNumber", mock.Anything, "101").Return(&entity.Bed{ID: 1, Number: "101"}, nil)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), &mockStatsCache{})
		_, err := uc.CreateBed(context.Background(), &dto.CreateBedRequest{Number: "101", Ward: "ICU"})

		assert.ErrorIs(t, err, ErrDuplicateBedNumber)
		bedRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate caught by unique index", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		bedRepo.On("FindByNumber", mock.Anything, "101").Return(nil, nil)
		bedRepo.On("Create", mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_beds_number"})

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), &mockStatsCache{})
		_, err := uc.CreateBed(context.Background(), &dto.CreateBedRequest{Number: "101", Ward: "ICU"})

		assert.ErrorIs(t, err, ErrDuplicateBedNumber)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("blank number or ward", func(t *testing.T) {
		f, verify := newBedFixture(t)
		defer verify()

		_, err := f.uc.CreateBed(context.Background(), &dto.CreateBedRequest{Number: " \t", Ward: "ICU"})
		assert.ErrorIs(t, err, ErrInvalidBedNumber)

		_, err = f.uc.CreateBed(context.Background(), &dto.CreateBedRequest{Number: "104", Ward: "  "})
		assert.ErrorIs(t, err, ErrInvalidBedNumber)
		f.bedRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("cannot be created occupied", func(t *testing.T) {
		f, verify := newBedFixture(t)
		defer verify()

		_, err := f.uc.CreateBed(context.Background(), &dto.CreateBedRequest{Number: "101", Ward: "ICU", Status: "Occupied"})
		assert.ErrorIs(t, err, ErrUseAssignForOccupancy)
	})
}

func TestBedUsecase_LateFailureRollsBack(t *testing.T) {
	writeErr := errors.New("connection reset by peer")

	t.Run("assign: patient update fails after bed was occupied", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		cache := &mockStatsCache{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusAvailable}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
		bedRepo.On("Occupy", mock.Anything, 1, 7).Return(int64(1), nil)
		patientRepo.On("UpdateBedNumber", mock.Anything, 7, mock.Anything).Return(writeErr)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), cache)
		err := uc.AssignPatient(context.Background(), 1, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, writeErr)
		bedRepo.AssertExpectations(t)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("release: patient update fails after bed was vacated", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		cache := &mockStatsCache{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusOccupied, PatientID: intPtr(7)}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).Return(&entity.Patient{ID: 7, BedNumber: strPtr("101")}, nil)
		bedRepo.On("Vacate", mock.Anything, 1).Return(int64(1), nil)
		patientRepo.On("UpdateBedNumber", mock.Anything, 7, mock.Anything).Return(writeErr)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), cache)
		err := uc.Release(context.Background(), 1)

		assert.ErrorIs(t, err, writeErr)
		bedRepo.AssertExpectations(t)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestBedUsecase_OccupancyCheckViolation(t *testing.T) {
	checkErr := &pgconn.PgError{Code: "23514", ConstraintName: "chk_beds_occupancy"}

	t.Run("assign maps to bed not available", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		patientRepo := &mockPatientRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 1).
			Return(&entity.Bed{ID: 1, Number: "101", Status: entity.BedStatusAvailable}, nil)
		patientRepo.On("FindByIDForUpdate", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
		bedRepo.On("Occupy", mock.Anything, 1, 7).Return(int64(0), checkErr)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, patientRepo, anyAudit(), &mockStatsCache{})
		err := uc.AssignPatient(context.Background(), 1, &dto.AssignBedRequest{PatientID: 7})

		assert.ErrorIs(t, err, ErrBedNotAvailable)
		patientRepo.AssertNotCalled(t, "UpdateBedNumber", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("status change maps to bed occupied", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		bedRepo := &mockBedRepo{}
		bedRepo.On("FindByIDForUpdate", mock.Anything, 3).
			Return(&entity.Bed{ID: 3, Number: "103", Status: entity.BedStatusAvailable}, nil)
		bedRepo.On("UpdateStatus", mock.Anything, 3, entity.BedStatusMaintenance, mock.Anything).Return(int64(0), checkErr)

		uc := NewBedUsecase(db, newTestLogger(), bedRepo, &mockPatientRepo{}, anyAudit(), &mockStatsCache{})
		_, err := uc.UpdateStatus(context.Background(), 3, &dto.UpdateBedStatusRequest{Status: "Maintenance"})

		assert.ErrorIs(t, err, ErrBedOccupied)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
