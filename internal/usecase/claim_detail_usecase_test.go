package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"warranty_hub/internal/domain/entities"
	mock_interfaces "warranty_hub/internal/usecase/interfaces/mocks"
)

func TestClaimDetailUseCase_GetClaimDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIWarrantyBackend(ctrl)
	uc := NewClaimDetailUseCase(backend)

	claims := []entities.WarrantyClaim{
		{ClaimID: "cl-1", VIN: "VIN1", TechnicianID: "acc-t", StaffID: "acc-s", EVMStaffID: "acc-e", Status: entities.ClaimStatusCheck},
		{ClaimID: "cl-2", VIN: "VIN2", Status: entities.ClaimStatusDone},
	}
	vehicles := []entities.Vehicle{
		{VIN: "VIN1", Model: "EV-X", Plate: "29A-12345"},
		{VIN: "VIN2", Model: "EV-Y"},
	}
	accounts := []entities.Account{
		{AccountID: "acc-t", FullName: "Tran Tech", Role: entities.RoleTechnician},
		{AccountID: "acc-s", FullName: "Sam Staff", Role: entities.RoleStaff},
	}
	backend.EXPECT().ListClaims(gomock.Any()).Return(claims, nil)
	backend.EXPECT().ListVehicles(gomock.Any()).Return(vehicles, nil)
	backend.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)

	detail, err := uc.GetClaimDetail(context.Background(), "cl-1")
	if err != nil {
		t.Fatalf("GetClaimDetail: %v", err)
	}
	if detail.Vehicle.Model != "EV-X" {
		t.Fatalf("expected vehicle EV-X, got %q", detail.Vehicle.Model)
	}
	if detail.TechnicianName != "Tran Tech" || detail.StaffName != "Sam Staff" {
		t.Fatalf("unexpected resolved names: %q / %q", detail.TechnicianName, detail.StaffName)
	}
	// acc-e has no account record: the name resolves empty, not an error.
	if detail.EVMStaffName != "" {
		t.Fatalf("expected empty EVM name, got %q", detail.EVMStaffName)
	}
}

func TestClaimDetailUseCase_ClaimNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIWarrantyBackend(ctrl)
	uc := NewClaimDetailUseCase(backend)

	backend.EXPECT().ListClaims(gomock.Any()).Return([]entities.WarrantyClaim{}, nil)
	backend.EXPECT().ListVehicles(gomock.Any()).Return([]entities.Vehicle{}, nil)
	backend.EXPECT().ListAccounts(gomock.Any()).Return([]entities.Account{}, nil)

	_, err := uc.GetClaimDetail(context.Background(), "cl-404")
	if !errors.Is(err, ErrClaimNotFound) {
		t.Fatalf("expected ErrClaimNotFound, got %v", err)
	}
}

func TestClaimDetailUseCase_PartialFetchFailureFailsWhole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIWarrantyBackend(ctrl)
	uc := NewClaimDetailUseCase(backend)

	fetchErr := errors.New("vehicles endpoint down")
	backend.EXPECT().ListClaims(gomock.Any()).Return([]entities.WarrantyClaim{{ClaimID: "cl-1"}}, nil).AnyTimes()
	backend.EXPECT().ListVehicles(gomock.Any()).Return(nil, fetchErr)
	backend.EXPECT().ListAccounts(gomock.Any()).Return([]entities.Account{}, nil).AnyTimes()

	_, err := uc.GetClaimDetail(context.Background(), "cl-1")
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error to surface, got %v", err)
	}
}

func TestClaimDetailUseCase_EmptyClaimID(t *testing.T) {
	uc := NewClaimDetailUseCase(nil)
	_, err := uc.GetClaimDetail(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidClaimID) {
		t.Fatalf("expected ErrInvalidClaimID, got %v", err)
	}
}
