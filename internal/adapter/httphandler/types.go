package httphandler

import (
	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

type (
	createProductRequest struct {
		Name     string   `json:"name" validate:"required"`
		Variant  string   `json:"variant" validate:"required"`
		MRP      *float64 `json:"MRP" validate:"required,gte=0"`
		Price    *float64 `json:"price" validate:"required,gte=0"`
		ImageURL []string `json:"imageUrl" validate:"required,min=1,dive,required"`
		Features []string `json:"features"`
	}

	emiPlanRequest struct {
		ProductID     string    `json:"productId" validate:"required,mongodb"`
		MonthlyAmount *float64  `json:"monthlyAmount" validate:"required,gte=0"`
		TenureMonths  *int      `json:"tenureMonths" validate:"required,gt=0"`
		InterestRate  *float64  `json:"interestRate" validate:"required,gte=0"`
		Cashback      *Cashback `json:"Cashback"`
		MutualFund    string    `json:"mutualFund" validate:"omitempty,mongodb"`
	}

	insertEMIPlansRequest struct {
		EMIPlans []emiPlanRequest `json:"emiPlans" validate:"dive"`
	}

	// EMIID is accepted for compatibility and not stored.
	createMutualFundRequest struct {
		EMIID            string   `json:"emiId"`
		Name             string   `json:"name" validate:"required"`
		AnnualReturnRate *float64 `json:"annualReturnRate" validate:"required"`
		RiskLevel        string   `json:"riskLevel" validate:"required"`
		Description      string   `json:"description"`
	}
)

type (
	productResponse struct {
		ID              string   `json:"_id"`
		Name            string   `json:"name"`
		Variant         string   `json:"variant"`
		MRP             float64  `json:"MRP"`
		Price           float64  `json:"price"`
		ImageURL        []string `json:"imageUrl"`
		Features        []string `json:"features"`
		DiscountPercent int      `json:"discountPercent"`
		Savings         float64  `json:"savings"`
	}

	productViewResponse struct {
		productResponse
		EMIPlans []emiPlanViewResponse `json:"emiPlans"`
	}

	emiPlanFields struct {
		ID              string   `json:"_id"`
		ProductID       string   `json:"productId"`
		MonthlyAmount   float64  `json:"monthlyAmount"`
		TenureMonths    int      `json:"tenureMonths"`
		InterestRate    float64  `json:"interestRate"`
		Cashback        Cashback `json:"Cashback"`
		CashbackDisplay string   `json:"cashbackDisplay,omitempty"`
	}

	emiPlanResponse struct {
		emiPlanFields
		MutualFund string `json:"mutualFund,omitempty"`
	}

	emiPlanViewResponse struct {
		emiPlanFields
		MutualFund     *mutualFundResponse `json:"mutualFund"`
		MonthlyPayment *float64            `json:"monthlyPayment,omitempty"`
	}

	mutualFundResponse struct {
		ID               string  `json:"_id"`
		Name             string  `json:"name"`
		AnnualReturnRate float64 `json:"annualReturnRate"`
		RiskLevel        string  `json:"riskLevel"`
		Description      string  `json:"description,omitempty"`
	}

	quoteResponse struct {
		Principal     float64 `json:"principal"`
		InterestRate  float64 `json:"interestRate"`
		TenureMonths  int     `json:"tenureMonths"`
		MonthlyAmount float64 `json:"monthlyAmount"`
		TotalPayable  float64 `json:"totalPayable"`
		TotalInterest float64 `json:"totalInterest"`
	}
)

func (r createProductRequest) toDomain() domain.Product {
	return domain.Product{
		Name:     r.Name,
		Variant:  r.Variant,
		MRP:      *r.MRP,
		Price:    *r.Price,
		ImageURL: r.ImageURL,
		Features: r.Features,
	}
}

func (r emiPlanRequest) toDomain() domain.EMIPlan {
	v := domain.EMIPlan{
		ProductID:     r.ProductID,
		MonthlyAmount: *r.MonthlyAmount,
		TenureMonths:  *r.TenureMonths,
		InterestRate:  *r.InterestRate,
		MutualFundID:  r.MutualFund,
	}
	if r.Cashback != nil {
		v.Cashback = r.Cashback.v
	}
	return v
}

func (r createMutualFundRequest) toDomain() domain.MutualFund {
	return domain.MutualFund{
		Name:             r.Name,
		AnnualReturnRate: *r.AnnualReturnRate,
		RiskLevel:        r.RiskLevel,
		Description:      r.Description,
	}
}

func toProductResponse(v domain.Product) productResponse {
	return productResponse{
		ID:              v.ID,
		Name:            v.Name,
		Variant:         v.Variant,
		MRP:             v.MRP,
		Price:           v.Price,
		ImageURL:        nonNil(v.ImageURL),
		Features:        nonNil(v.Features),
		DiscountPercent: v.DiscountPercent(),
		Savings:         v.Savings(),
	}
}

func toProductViewResponses(vs []domain.ProductView) []productViewResponse {
	rs := make([]productViewResponse, len(vs))
	for i, v := range vs {
		rs[i] = productViewResponse{
			productResponse: toProductResponse(v.Product),
			EMIPlans:        toEMIPlanViewResponses(v.EMIPlans),
		}
	}
	return rs
}

func toEMIPlanFields(v domain.EMIPlan) emiPlanFields {
	return emiPlanFields{
		ID:              v.ID,
		ProductID:       v.ProductID,
		MonthlyAmount:   v.MonthlyAmount,
		TenureMonths:    v.TenureMonths,
		InterestRate:    v.InterestRate,
		Cashback:        Cashback{v.Cashback},
		CashbackDisplay: v.Cashback.Display(),
	}
}

func toEMIPlanResponses(vs []domain.EMIPlan) []emiPlanResponse {
	rs := make([]emiPlanResponse, len(vs))
	for i, v := range vs {
		rs[i] = emiPlanResponse{
			emiPlanFields: toEMIPlanFields(v),
			MutualFund:    v.MutualFundID,
		}
	}
	return rs
}

func toEMIPlanViewResponses(vs []domain.EMIPlanView) []emiPlanViewResponse {
	rs := make([]emiPlanViewResponse, len(vs))
	for i, v := range vs {
		r := emiPlanViewResponse{
			emiPlanFields:  toEMIPlanFields(v.EMIPlan),
			MonthlyPayment: nullDecimalFloat(v.MonthlyPayment),
		}
		if v.MutualFund != nil {
			f := toMutualFundResponse(*v.MutualFund)
			r.MutualFund = &f
		}
		rs[i] = r
	}
	return rs
}

func toMutualFundResponse(v domain.MutualFund) mutualFundResponse {
	return mutualFundResponse{
		ID:               v.ID,
		Name:             v.Name,
		AnnualReturnRate: v.AnnualReturnRate,
		RiskLevel:        v.RiskLevel,
		Description:      v.Description,
	}
}

func nullDecimalFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
