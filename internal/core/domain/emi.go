package domain

import "github.com/shopspring/decimal"

type (
	EMIPlan struct {
		ID            string
		ProductID     string
		MonthlyAmount float64
		TenureMonths  int
		InterestRate  float64
		Cashback      Cashback
		MutualFundID  string
	}

	// An EMIPlanView is a plan with its mutual fund resolved.
	//
	// MutualFund is nil when the plan has no fund or the reference
	// is dangling. MonthlyPayment is computed from the owning product
	// price and is invalid when no price is known.
	EMIPlanView struct {
		EMIPlan
		MutualFund     *MutualFund
		MonthlyPayment decimal.NullDecimal
	}
)

func (p EMIPlan) Validate() error {
	var v validation

	v.require(p.ProductID != "", "productId", "productId is required")
	v.require(p.MonthlyAmount >= 0, "monthlyAmount", "monthly amount must not be negative")
	v.require(p.TenureMonths > 0, "tenureMonths", "tenure must be at least one month")
	v.require(p.InterestRate >= 0, "interestRate", "interest rate must not be negative")

	return v.err()
}
