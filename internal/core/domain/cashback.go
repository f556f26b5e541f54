package domain

import "strconv"

type CashbackKind uint8

const (
	CashbackNone CashbackKind = iota
	CashbackFlat
	CashbackRange
)

// An Amount is a cashback value given either as a number
// or as free text such as "5%".
type Amount struct {
	number float64
	text   string
	isText bool
}

func NumberAmount(v float64) Amount {
	return Amount{number: v}
}

func TextAmount(s string) Amount {
	return Amount{text: s, isText: true}
}

func (a Amount) IsText() bool {
	return a.isText
}

func (a Amount) Number() float64 {
	return a.number
}

func (a Amount) Text() string {
	return a.text
}

// IsZero reports whether the amount is 0 or an empty string.
func (a Amount) IsZero() bool {
	if a.isText {
		return a.text == ""
	}
	return a.number == 0
}

func (a Amount) String() string {
	if a.isText {
		return a.text
	}
	return strconv.FormatFloat(a.number, 'f', -1, 64)
}

// A Cashback is either a flat amount or a low..high range.
// The zero value means no cashback.
type Cashback struct {
	kind CashbackKind
	low  Amount
	high Amount
}

func FlatCashback(a Amount) Cashback {
	return Cashback{kind: CashbackFlat, low: a}
}

func RangeCashback(low, high Amount) Cashback {
	return Cashback{kind: CashbackRange, low: low, high: high}
}

func (c Cashback) Kind() CashbackKind {
	return c.kind
}

// Amount returns the flat amount. For a range it returns the low bound.
func (c Cashback) Amount() Amount {
	return c.low
}

func (c Cashback) Bounds() (low, high Amount) {
	return c.low, c.high
}

// Display returns the value shown to a buyer: the high bound of a range
// unless it is empty, otherwise the low bound or the flat amount.
func (c Cashback) Display() string {
	switch c.kind {
	case CashbackFlat:
		return c.low.String()
	case CashbackRange:
		if !c.high.IsZero() {
			return c.high.String()
		}
		return c.low.String()
	default:
		return ""
	}
}
