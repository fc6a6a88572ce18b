package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
)

func newRequest(method, target, body string, vars map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

type mockBedUsecase struct{ mock.Mock }

func (m *mockBedUsecase) CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error) {
	args := m.Called(ctx, req)
	bed, _ := args.Get(0).(*dto.BedResponse)
	return bed, args.Error(1)
}

func (m *mockBedUsecase) GetAllBeds(ctx context.Context, filter *entity.BedFilter) ([]dto.BedResponse, error) {
	args := m.Called(ctx, filter)
	beds, _ := args.Get(0).([]dto.BedResponse)
	return beds, args.Error(1)
}

func (m *mockBedUsecase) GetBed(ctx context.Context, id int) (*dto.BedResponse, error) {
	args := m.Called(ctx, id)
	bed, _ := args.Get(0).(*dto.BedResponse)
	return bed, args.Error(1)
}

func (m *mockBedUsecase) UpdateStatus(ctx context.Context, id int, req *dto.UpdateBedStatusRequest) (*dto.BedResponse, error) {
	args := m.Called(ctx, id, req)
	bed, _ := args.Get(0).(*dto.BedResponse)
	return bed, args.Error(1)
}

func (m *mockBedUsecase) AssignPatient(ctx context.Context, bedID int, req *dto.AssignBedRequest) error {
	return m.Called(ctx, bedID, req).Error(0)
}

func (m *mockBedUsecase) Release(ctx context.Context, bedID int) error {
	return m.Called(ctx, bedID).Error(0)
}

type mockTransferUsecase struct{ mock.Mock }

func (m *mockTransferUsecase) RequestTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	args := m.Called(ctx, req)
	transfer, _ := args.Get(0).(*dto.TransferResponse)
	return transfer, args.Error(1)
}

func (m *mockTransferUsecase) GetAllTransfers(ctx context.Context, filter *entity.TransferFilter) ([]dto.TransferResponse, error) {
	args := m.Called(ctx, filter)
	transfers, _ := args.Get(0).([]dto.TransferResponse)
	return transfers, args.Error(1)
}

func (m *mockTransferUsecase) GetTransfer(ctx context.Context, id int) (*dto.TransferResponse, error) {
	args := m.Called(ctx, id)
	transfer, _ := args.Get(0).(*dto.TransferResponse)
	return transfer, args.Error(1)
}

func (m *mockTransferUsecase) Approve(ctx context.Context, id int, req *dto.ApproveTransferRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *mockTransferUsecase) Reject(ctx context.Context, id int, req *dto.RejectTransferRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

type mockAuthUsecase struct{ mock.Mock }

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*dto.UserResponse)
	return user, args.Error(1)
}

func (m *mockAuthUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*dto.UserResponse)
	return user, args.Error(1)
}

func (m *mockAuthUsecase) RegisterNurse(ctx context.Context, req *dto.RegisterNurseRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*dto.UserResponse)
	return user, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	return m.Called(ctx, userID, accessTokenID, refreshToken).Error(0)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*dto.UserResponse)
	return user, args.Error(1)
}
