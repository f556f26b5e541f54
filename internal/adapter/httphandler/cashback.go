package httphandler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/niksmo/emi-catalog/internal/core/domain"
)

var errCashbackShape = errors.New(
	"Cashback must be a number, a string or a pair of them",
)

// A Cashback is the JSON form of [domain.Cashback]: null, a scalar
// (number or string) or an array of one or two scalars.
type Cashback struct {
	v domain.Cashback
}

func (c *Cashback) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		c.v = domain.Cashback{}
		return nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	arr, isArr := raw.([]any)
	if !isArr {
		a, ok := jsonAmount(raw)
		if !ok {
			return errCashbackShape
		}
		c.v = domain.FlatCashback(a)
		return nil
	}

	switch len(arr) {
	case 1:
		a, ok := jsonAmount(arr[0])
		if !ok {
			return errCashbackShape
		}
		c.v = domain.FlatCashback(a)
	case 2:
		low, okLow := jsonAmount(arr[0])
		high, okHigh := jsonAmount(arr[1])
		if !okLow || !okHigh {
			return errCashbackShape
		}
		c.v = domain.RangeCashback(low, high)
	default:
		return errCashbackShape
	}
	return nil
}

func (c Cashback) MarshalJSON() ([]byte, error) {
	switch c.v.Kind() {
	case domain.CashbackFlat:
		return json.Marshal(amountJSON(c.v.Amount()))
	case domain.CashbackRange:
		low, high := c.v.Bounds()
		return json.Marshal([]any{amountJSON(low), amountJSON(high)})
	default:
		return []byte("null"), nil
	}
}

func jsonAmount(v any) (domain.Amount, bool) {
	switch t := v.(type) {
	case float64:
		return domain.NumberAmount(t), true
	case string:
		return domain.TextAmount(t), true
	default:
		return domain.Amount{}, false
	}
}

func amountJSON(a domain.Amount) any {
	if a.IsText() {
		return a.Text()
	}
	return a.Number()
}
