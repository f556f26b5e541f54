package domain_test

import (
	"testing"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCashbackDisplay(t *testing.T) {
	tests := []struct {
		name     string
		cashback domain.Cashback
		want     string
	}{
		{"None", domain.Cashback{}, ""},
		{"FlatNumber", domain.FlatCashback(domain.NumberAmount(500)), "500"},
		{"FlatText", domain.FlatCashback(domain.TextAmount("5%")), "5%"},
		{
			"RangeHigh",
			domain.RangeCashback(domain.NumberAmount(100), domain.TextAmount("1500")),
			"1500",
		},
		{
			"RangeEmptyHigh",
			domain.RangeCashback(domain.NumberAmount(250.5), domain.TextAmount("")),
			"250.5",
		},
		{
			"RangeZeroHigh",
			domain.RangeCashback(domain.TextAmount("2%"), domain.NumberAmount(0)),
			"2%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cashback.Display())
		})
	}
}

func TestCashbackKind(t *testing.T) {
	assert.Equal(t, domain.CashbackNone, domain.Cashback{}.Kind())

	c := domain.RangeCashback(domain.NumberAmount(1), domain.NumberAmount(2))
	assert.Equal(t, domain.CashbackRange, c.Kind())

	low, high := c.Bounds()
	assert.Equal(t, 1.0, low.Number())
	assert.Equal(t, 2.0, high.Number())
	assert.False(t, high.IsText())
}
