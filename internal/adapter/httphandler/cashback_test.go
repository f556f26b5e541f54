package httphandler

import (
	"encoding/json"
	"testing"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashbackJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Cashback
		out  string
	}{
		{"Null", `null`, domain.Cashback{}, `null`},
		{"Number", `500`, domain.FlatCashback(domain.NumberAmount(500)), `500`},
		{"Text", `"₹500"`, domain.FlatCashback(domain.TextAmount("₹500")), `"₹500"`},
		{"SingleElement", `[250]`, domain.FlatCashback(domain.NumberAmount(250)), `250`},
		{
			"Range", `[100, "up to ₹1000"]`,
			domain.RangeCashback(domain.NumberAmount(100), domain.TextAmount("up to ₹1000")),
			`[100,"up to ₹1000"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cashback
			require.NoError(t, json.Unmarshal([]byte(tt.in), &c))
			assert.Equal(t, tt.want, c.v)

			b, err := json.Marshal(c)
			require.NoError(t, err)
			assert.JSONEq(t, tt.out, string(b))
		})
	}

	for _, in := range []string{`[]`, `[1,2,3]`, `true`, `{"a":1}`, `[null]`} {
		t.Run("Rejects"+in, func(t *testing.T) {
			var c Cashback
			assert.ErrorIs(t, json.Unmarshal([]byte(in), &c), errCashbackShape)
		})
	}
}
