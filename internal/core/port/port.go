package port

import (
	"context"

	"github.com/niksmo/emi-catalog/internal/core/domain"
)

type ProductsCreator interface {
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
}

type ProductsReader interface {
	ListProducts(context.Context) ([]domain.ProductView, error)
	FindProductsByName(ctx context.Context, name string) ([]domain.ProductView, error)
}

type EMIPlansCreator interface {
	CreateEMIPlan(context.Context, domain.EMIPlan) (domain.EMIPlan, error)
	InsertEMIPlans(context.Context, []domain.EMIPlan) ([]domain.EMIPlan, error)
}

type EMIPlansReader interface {
	EMIPlansByProduct(ctx context.Context, productID string) ([]domain.EMIPlanView, error)
}

type MutualFundsCreator interface {
	CreateMutualFund(context.Context, domain.MutualFund) (domain.MutualFund, error)
}

type HealthChecker interface {
	Ping(context.Context) error
}

type ProductsStorage interface {
	InsertProduct(context.Context, domain.Product) (domain.Product, error)
	AllProducts(context.Context) ([]domain.Product, error)
	ProductsByName(ctx context.Context, name string) ([]domain.Product, error)
}

type EMIPlansStorage interface {
	InsertEMIPlans(context.Context, []domain.EMIPlan) ([]domain.EMIPlan, error)
	FindEMIPlansByProducts(ctx context.Context, productIDs []string) ([]domain.EMIPlan, error)
}

type MutualFundsStorage interface {
	InsertMutualFund(context.Context, domain.MutualFund) (domain.MutualFund, error)
	FindMutualFunds(ctx context.Context, ids []string) ([]domain.MutualFund, error)
}

type CatalogEventsProducer interface {
	ProduceEvents(context.Context, []domain.CatalogEvent) error
}
