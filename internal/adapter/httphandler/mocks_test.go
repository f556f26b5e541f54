package httphandler_test

import (
	"context"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductsService struct {
	mock.Mock
}

func (m *MockProductsService) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsService) ListProducts(
	ctx context.Context,
) ([]domain.ProductView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProductView), args.Error(1)
}

func (m *MockProductsService) FindProductsByName(
	ctx context.Context, name string,
) ([]domain.ProductView, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.ProductView), args.Error(1)
}

type MockEMIPlansService struct {
	mock.Mock
}

func (m *MockEMIPlansService) CreateEMIPlan(
	ctx context.Context, p domain.EMIPlan,
) (domain.EMIPlan, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.EMIPlan), args.Error(1)
}

func (m *MockEMIPlansService) InsertEMIPlans(
	ctx context.Context, ps []domain.EMIPlan,
) ([]domain.EMIPlan, error) {
	args := m.Called(ctx, ps)
	return args.Get(0).([]domain.EMIPlan), args.Error(1)
}

func (m *MockEMIPlansService) EMIPlansByProduct(
	ctx context.Context, productID string,
) ([]domain.EMIPlanView, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.EMIPlanView), args.Error(1)
}

type MockMutualFundsService struct {
	mock.Mock
}

func (m *MockMutualFundsService) CreateMutualFund(
	ctx context.Context, f domain.MutualFund,
) (domain.MutualFund, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.MutualFund), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
