package service

import (
	"context"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/niksmo/emi-catalog/pkg/emi"
	"github.com/shopspring/decimal"
)

// joinProducts resolves the EMI plans of products and the mutual fund
// of every plan.
func (s Service) joinProducts(
	ctx context.Context, ps []domain.Product,
) ([]domain.ProductView, error) {
	if len(ps) == 0 {
		return []domain.ProductView{}, nil
	}

	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}

	plans, err := s.emiPlansStorage.FindEMIPlansByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	funds, err := s.fundsOf(ctx, plans)
	if err != nil {
		return nil, err
	}

	return assembleProducts(ps, plans, funds), nil
}

func (s Service) fundsOf(
	ctx context.Context, plans []domain.EMIPlan,
) ([]domain.MutualFund, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, p := range plans {
		if p.MutualFundID == "" {
			continue
		}
		if _, ok := seen[p.MutualFundID]; ok {
			continue
		}
		seen[p.MutualFundID] = struct{}{}
		ids = append(ids, p.MutualFundID)
	}

	if len(ids) == 0 {
		return nil, nil
	}
	return s.mutualFundsStorage.FindMutualFunds(ctx, ids)
}

// assembleProducts attaches to each product the plans referencing it.
// Product and plan order is kept.
func assembleProducts(
	ps []domain.Product, plans []domain.EMIPlan, funds []domain.MutualFund,
) []domain.ProductView {
	byProduct := make(map[string][]domain.EMIPlan, len(ps))
	for _, plan := range plans {
		byProduct[plan.ProductID] = append(byProduct[plan.ProductID], plan)
	}

	fundsByID := indexFunds(funds)

	vs := make([]domain.ProductView, len(ps))
	for i, p := range ps {
		price := p.Price
		vs[i] = domain.ProductView{
			Product:  p,
			EMIPlans: assemblePlans(byProduct[p.ID], fundsByID, &price),
		}
	}
	return vs
}

// assemblePlans resolves the fund of every plan. When price is set,
// the monthly payment for that price is computed too.
func assemblePlans(
	plans []domain.EMIPlan,
	fundsByID map[string]domain.MutualFund,
	price *float64,
) []domain.EMIPlanView {
	vs := make([]domain.EMIPlanView, len(plans))
	for i, plan := range plans {
		v := domain.EMIPlanView{EMIPlan: plan}

		if f, ok := fundsByID[plan.MutualFundID]; ok {
			v.MutualFund = &f
		}

		if price != nil {
			v.MonthlyPayment = monthlyPayment(*price, plan)
		}
		vs[i] = v
	}
	return vs
}

func monthlyPayment(price float64, plan domain.EMIPlan) decimal.NullDecimal {
	m, err := emi.Monthly(price, plan.InterestRate, plan.TenureMonths)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m)
}

func indexFunds(funds []domain.MutualFund) map[string]domain.MutualFund {
	m := make(map[string]domain.MutualFund, len(funds))
	for _, f := range funds {
		m[f.ID] = f
	}
	return m
}
