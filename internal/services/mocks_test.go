package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stwalsh4118/landregistry/internal/models"
	"github.com/stwalsh4118/landregistry/internal/repository"
)

// MockParcelRepository is a mock implementation of ParcelRepository for testing
type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) List(ctx context.Context, filter repository.ParcelFilter) ([]repository.ParcelSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ParcelSummary), args.Error(1)
}

func (m *MockParcelRepository) FindByID(ctx context.Context, id string) (*repository.ParcelDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ParcelDetail), args.Error(1)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) List(ctx context.Context, filter repository.TransferFilter) ([]repository.TransferDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TransferDetail), args.Error(1)
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id string) (*repository.TransferDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TransferDetail), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockFraudAlertRepository struct {
	mock.Mock
}

func (m *MockFraudAlertRepository) List(ctx context.Context, filter repository.FraudAlertFilter) ([]models.FraudAlert, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FraudAlert), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) All(ctx context.Context) ([]models.SystemStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SystemStat), args.Error(1)
}
