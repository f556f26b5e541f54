package service_test

import (
	"context"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductsStorage struct {
	mock.Mock
}

func (m *MockProductsStorage) InsertProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsStorage) AllProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductsStorage) ProductsByName(
	ctx context.Context, name string,
) ([]domain.Product, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockEMIPlansStorage struct {
	mock.Mock
}

func (m *MockEMIPlansStorage) InsertEMIPlans(
	ctx context.Context, ps []domain.EMIPlan,
) ([]domain.EMIPlan, error) {
	args := m.Called(ctx, ps)
	return args.Get(0).([]domain.EMIPlan), args.Error(1)
}

func (m *MockEMIPlansStorage) FindEMIPlansByProducts(
	ctx context.Context, productIDs []string,
) ([]domain.EMIPlan, error) {
	args := m.Called(ctx, productIDs)
	return args.Get(0).([]domain.EMIPlan), args.Error(1)
}

type MockMutualFundsStorage struct {
	mock.Mock
}

func (m *MockMutualFundsStorage) InsertMutualFund(
	ctx context.Context, f domain.MutualFund,
) (domain.MutualFund, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.MutualFund), args.Error(1)
}

func (m *MockMutualFundsStorage) FindMutualFunds(
	ctx context.Context, ids []string,
) ([]domain.MutualFund, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.MutualFund), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockEventsProducer struct {
	mock.Mock
}

func (m *MockEventsProducer) ProduceEvents(
	ctx context.Context, evts []domain.CatalogEvent,
) error {
	return m.Called(ctx, evts).Error(0)
}
