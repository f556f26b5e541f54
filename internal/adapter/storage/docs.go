package storage

import (
	"fmt"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	productDoc struct {
		ID       primitive.ObjectID `bson:"_id,omitempty"`
		Name     string             `bson:"name"`
		Variant  string             `bson:"variant"`
		MRP      float64            `bson:"MRP"`
		Price    float64            `bson:"price"`
		ImageURL []string           `bson:"imageUrl"`
		Features []string           `bson:"features"`
	}

	// Cashback is stored as a scalar or a two element array,
	// the same shape clients send.
	emiPlanDoc struct {
		ID            primitive.ObjectID  `bson:"_id,omitempty"`
		ProductID     primitive.ObjectID  `bson:"productId"`
		MonthlyAmount float64             `bson:"monthlyAmount"`
		TenureMonths  int                 `bson:"tenureMonths"`
		InterestRate  float64             `bson:"interestRate"`
		Cashback      any                 `bson:"Cashback,omitempty"`
		MutualFund    *primitive.ObjectID `bson:"mutualFund,omitempty"`
	}

	mutualFundDoc struct {
		ID               primitive.ObjectID `bson:"_id,omitempty"`
		Name             string             `bson:"name"`
		AnnualReturnRate float64            `bson:"annualReturnRate"`
		RiskLevel        string             `bson:"riskLevel"`
		Description      string             `bson:"description,omitempty"`
	}
)

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, hex)
	}
	return id, nil
}

func objectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, len(hexes))
	for i, hex := range hexes {
		id, err := objectID(hex)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func toProductDoc(v domain.Product) productDoc {
	return productDoc{
		Name:     v.Name,
		Variant:  v.Variant,
		MRP:      v.MRP,
		Price:    v.Price,
		ImageURL: v.ImageURL,
		Features: v.Features,
	}
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Variant:  d.Variant,
		MRP:      d.MRP,
		Price:    d.Price,
		ImageURL: d.ImageURL,
		Features: d.Features,
	}
}

func toEMIPlanDoc(v domain.EMIPlan) (emiPlanDoc, error) {
	productID, err := objectID(v.ProductID)
	if err != nil {
		return emiPlanDoc{}, err
	}

	d := emiPlanDoc{
		ProductID:     productID,
		MonthlyAmount: v.MonthlyAmount,
		TenureMonths:  v.TenureMonths,
		InterestRate:  v.InterestRate,
		Cashback:      cashbackValue(v.Cashback),
	}

	if v.MutualFundID != "" {
		fundID, err := objectID(v.MutualFundID)
		if err != nil {
			return emiPlanDoc{}, err
		}
		d.MutualFund = &fundID
	}
	return d, nil
}

func (d emiPlanDoc) toDomain() domain.EMIPlan {
	v := domain.EMIPlan{
		ID:            d.ID.Hex(),
		ProductID:     d.ProductID.Hex(),
		MonthlyAmount: d.MonthlyAmount,
		TenureMonths:  d.TenureMonths,
		InterestRate:  d.InterestRate,
		Cashback:      parseCashback(d.Cashback),
	}
	if d.MutualFund != nil {
		v.MutualFundID = d.MutualFund.Hex()
	}
	return v
}

func toMutualFundDoc(v domain.MutualFund) mutualFundDoc {
	return mutualFundDoc{
		Name:             v.Name,
		AnnualReturnRate: v.AnnualReturnRate,
		RiskLevel:        v.RiskLevel,
		Description:      v.Description,
	}
}

func (d mutualFundDoc) toDomain() domain.MutualFund {
	return domain.MutualFund{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		AnnualReturnRate: d.AnnualReturnRate,
		RiskLevel:        d.RiskLevel,
		Description:      d.Description,
	}
}

func cashbackValue(c domain.Cashback) any {
	switch c.Kind() {
	case domain.CashbackFlat:
		return amountValue(c.Amount())
	case domain.CashbackRange:
		low, high := c.Bounds()
		return bson.A{amountValue(low), amountValue(high)}
	default:
		return nil
	}
}

func amountValue(a domain.Amount) any {
	if a.IsText() {
		return a.Text()
	}
	return a.Number()
}

// parseCashback accepts whatever was stored. Values of unknown shape
// are treated as no cashback.
func parseCashback(v any) domain.Cashback {
	if arr, ok := v.(primitive.A); ok {
		v = []any(arr)
	}

	switch t := v.(type) {
	case []any:
		switch {
		case len(t) == 1:
			if a, ok := parseAmount(t[0]); ok {
				return domain.FlatCashback(a)
			}
		case len(t) >= 2:
			low, okLow := parseAmount(t[0])
			high, okHigh := parseAmount(t[1])
			if okLow && okHigh {
				return domain.RangeCashback(low, high)
			}
		}
		return domain.Cashback{}
	default:
		if a, ok := parseAmount(t); ok {
			return domain.FlatCashback(a)
		}
		return domain.Cashback{}
	}
}

func parseAmount(v any) (domain.Amount, bool) {
	switch t := v.(type) {
	case string:
		return domain.TextAmount(t), true
	case float64:
		return domain.NumberAmount(t), true
	case int32:
		return domain.NumberAmount(float64(t)), true
	case int64:
		return domain.NumberAmount(float64(t)), true
	case int:
		return domain.NumberAmount(float64(t)), true
	default:
		return domain.Amount{}, false
	}
}
