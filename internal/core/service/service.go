package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/niksmo/emi-catalog/internal/core/port"
)

var _ port.ProductsCreator = (*Service)(nil)
var _ port.ProductsReader = (*Service)(nil)
var _ port.EMIPlansCreator = (*Service)(nil)
var _ port.EMIPlansReader = (*Service)(nil)
var _ port.MutualFundsCreator = (*Service)(nil)
var _ port.HealthChecker = (*Service)(nil)

type Service struct {
	productsStorage    port.ProductsStorage
	emiPlansStorage    port.EMIPlansStorage
	mutualFundsStorage port.MutualFundsStorage
	healthChecker      port.HealthChecker
	eventsProducer     port.CatalogEventsProducer
	now                func() time.Time
}

// New returns the catalog service.
//
// eventsProducer may be nil, then no catalog events are produced.
func New(
	productsStorage port.ProductsStorage,
	emiPlansStorage port.EMIPlansStorage,
	mutualFundsStorage port.MutualFundsStorage,
	healthChecker port.HealthChecker,
	eventsProducer port.CatalogEventsProducer,
) Service {
	return Service{
		productsStorage:    productsStorage,
		emiPlansStorage:    emiPlansStorage,
		mutualFundsStorage: mutualFundsStorage,
		healthChecker:      healthChecker,
		eventsProducer:     eventsProducer,
		now:                time.Now,
	}
}

func (s Service) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := p.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.productsStorage.InsertProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.produceEvents(ctx, domain.CatalogEvent{
		Type:      domain.ProductCreated,
		EntityID:  created.ID,
		ProductID: created.ID,
		Name:      created.Name,
	})

	return created, nil
}

func (s Service) ListProducts(
	ctx context.Context,
) ([]domain.ProductView, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.productsStorage.AllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs, err := s.joinProducts(ctx, ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

func (s Service) FindProductsByName(
	ctx context.Context, name string,
) ([]domain.ProductView, error) {
	const op = "Service.FindProductsByName"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.productsStorage.ProductsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs, err := s.joinProducts(ctx, ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

func (s Service) CreateEMIPlan(
	ctx context.Context, p domain.EMIPlan,
) (domain.EMIPlan, error) {
	const op = "Service.CreateEMIPlan"

	if err := ctx.Err(); err != nil {
		return domain.EMIPlan{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := p.Validate(); err != nil {
		return domain.EMIPlan{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.insertEMIPlans(ctx, []domain.EMIPlan{p})
	if err != nil {
		return domain.EMIPlan{}, fmt.Errorf("%s: %w", op, err)
	}
	return created[0], nil
}

// InsertEMIPlans validates every plan before writing any of them.
// The batch is written with a single store call, which is not atomic.
func (s Service) InsertEMIPlans(
	ctx context.Context, ps []domain.EMIPlan,
) ([]domain.EMIPlan, error) {
	const op = "Service.InsertEMIPlans"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(ps) == 0 {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNoPlans)
	}

	if err := validatePlans(ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.insertEMIPlans(ctx, ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s Service) EMIPlansByProduct(
	ctx context.Context, productID string,
) ([]domain.EMIPlanView, error) {
	const op = "Service.EMIPlansByProduct"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if productID == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidID)
	}

	plans, err := s.emiPlansStorage.FindEMIPlansByProducts(
		ctx, []string{productID},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	funds, err := s.fundsOf(ctx, plans)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return assemblePlans(plans, indexFunds(funds), nil), nil
}

func (s Service) CreateMutualFund(
	ctx context.Context, f domain.MutualFund,
) (domain.MutualFund, error) {
	const op = "Service.CreateMutualFund"

	if err := ctx.Err(); err != nil {
		return domain.MutualFund{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := f.Validate(); err != nil {
		return domain.MutualFund{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.mutualFundsStorage.InsertMutualFund(ctx, f)
	if err != nil {
		return domain.MutualFund{}, fmt.Errorf("%s: %w", op, err)
	}

	s.produceEvents(ctx, domain.CatalogEvent{
		Type:     domain.MutualFundCreated,
		EntityID: created.ID,
		Name:     created.Name,
	})

	return created, nil
}

func (s Service) Ping(ctx context.Context) error {
	const op = "Service.Ping"

	if err := s.healthChecker.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) insertEMIPlans(
	ctx context.Context, ps []domain.EMIPlan,
) ([]domain.EMIPlan, error) {
	created, err := s.emiPlansStorage.InsertEMIPlans(ctx, ps)
	if err != nil {
		return nil, err
	}

	evts := make([]domain.CatalogEvent, len(created))
	for i, p := range created {
		evts[i] = domain.CatalogEvent{
			Type:      domain.EMIPlanCreated,
			EntityID:  p.ID,
			ProductID: p.ProductID,
		}
	}
	s.produceEvents(ctx, evts...)

	return created, nil
}

// produceEvents never fails the caller, the record is already stored.
func (s Service) produceEvents(
	ctx context.Context, evts ...domain.CatalogEvent,
) {
	const op = "Service.produceEvents"

	if s.eventsProducer == nil || len(evts) == 0 {
		return
	}

	now := s.now()
	for i := range evts {
		evts[i].OccurredAt = now
	}

	if err := s.eventsProducer.ProduceEvents(ctx, evts); err != nil {
		slog.Warn("failed to produce catalog events",
			"op", op, "nEvents", len(evts), "err", err)
	}
}

func validatePlans(ps []domain.EMIPlan) error {
	var fields []domain.FieldError
	for i, p := range ps {
		var vErr *domain.ValidationError
		if !errors.As(p.Validate(), &vErr) {
			continue
		}
		for _, f := range vErr.Fields {
			fields = append(fields, domain.FieldError{
				Field:   fmt.Sprintf("emiPlans[%d].%s", i, f.Field),
				Message: fmt.Sprintf("plan %d: %s", i, f.Message),
			})
		}
	}

	if len(fields) != 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
