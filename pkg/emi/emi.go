// Package emi computes equated monthly installments.
package emi

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

const places = 2

var (
	ErrInvalidTenure     = errors.New("tenure must be at least one month")
	ErrNegativePrincipal = errors.New("principal must not be negative")
	ErrNegativeRate      = errors.New("interest rate must not be negative")
	ErrNotFinite         = errors.New("arguments must be finite numbers")
	ErrOverflow          = errors.New("payment is out of range")
)

// Quote describes the repayment of a principal over tenure months.
type Quote struct {
	Principal     decimal.Decimal
	InterestRate  decimal.Decimal
	TenureMonths  int
	Monthly       decimal.Decimal
	TotalPayable  decimal.Decimal
	TotalInterest decimal.Decimal
}

// Monthly returns the fixed monthly payment that amortizes principal
// over tenureMonths at annualRatePercent compounded monthly,
// rounded to 2 decimal places.
func Monthly(
	principal, annualRatePercent float64, tenureMonths int,
) (decimal.Decimal, error) {
	if err := validate(principal, annualRatePercent, tenureMonths); err != nil {
		return decimal.Decimal{}, err
	}

	n := float64(tenureMonths)
	payment := principal / n
	if annualRatePercent != 0 {
		r := annualRatePercent / 12 / 100
		growth := math.Pow(1+r, n)
		payment = principal * r * growth / (growth - 1)
	}

	// Large tenures overflow growth to +Inf and the payment to NaN.
	if notFinite(payment) {
		return decimal.Decimal{}, ErrOverflow
	}
	return decimal.NewFromFloat(payment).Round(places), nil
}

// NewQuote returns the monthly payment together with the totals
// paid over the whole tenure.
func NewQuote(
	principal, annualRatePercent float64, tenureMonths int,
) (Quote, error) {
	monthly, err := Monthly(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return Quote{}, err
	}

	p := decimal.NewFromFloat(principal)
	total := monthly.Mul(decimal.NewFromInt(int64(tenureMonths))).Round(places)

	return Quote{
		Principal:     p,
		InterestRate:  decimal.NewFromFloat(annualRatePercent),
		TenureMonths:  tenureMonths,
		Monthly:       monthly,
		TotalPayable:  total,
		TotalInterest: total.Sub(p).Round(places),
	}, nil
}

func validate(principal, rate float64, tenure int) error {
	switch {
	case notFinite(principal) || notFinite(rate):
		return ErrNotFinite
	case tenure <= 0:
		return ErrInvalidTenure
	case principal < 0:
		return ErrNegativePrincipal
	case rate < 0:
		return ErrNegativeRate
	}
	return nil
}

func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
