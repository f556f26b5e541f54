package storage

import (
	"testing"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseCashback(t *testing.T) {
	tests := []struct {
		name    string
		stored  any
		kind    domain.CashbackKind
		display string
	}{
		{"Absent", nil, domain.CashbackNone, ""},
		{"Double", 500.0, domain.CashbackFlat, "500"},
		{"Int32", int32(750), domain.CashbackFlat, "750"},
		{"Text", "5%", domain.CashbackFlat, "5%"},
		{"SingleElement", primitive.A{"200"}, domain.CashbackFlat, "200"},
		{"Range", primitive.A{int32(100), "1500"}, domain.CashbackRange, "1500"},
		{"EmptyArray", primitive.A{}, domain.CashbackNone, ""},
		{"Document", primitive.D{{Key: "x", Value: 1}}, domain.CashbackNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parseCashback(tt.stored)
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, tt.display, c.Display())
		})
	}
}

func TestCashbackValue(t *testing.T) {
	assert.Nil(t, cashbackValue(domain.Cashback{}))
	assert.Equal(t, 300.0, cashbackValue(domain.FlatCashback(domain.NumberAmount(300))))

	v := cashbackValue(domain.RangeCashback(
		domain.NumberAmount(100), domain.TextAmount("2%"),
	))
	assert.Equal(t, bson.A{100.0, "2%"}, v)
}

func TestEMIPlanDocConversion(t *testing.T) {
	fundID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	in := domain.EMIPlan{
		ProductID:     productID.Hex(),
		MonthlyAmount: 4200,
		TenureMonths:  18,
		InterestRate:  14,
		Cashback:      domain.RangeCashback(domain.NumberAmount(100), domain.NumberAmount(900)),
		MutualFundID:  fundID.Hex(),
	}

	d, err := toEMIPlanDoc(in)
	require.NoError(t, err)
	require.NotNil(t, d.MutualFund)
	assert.Equal(t, fundID, *d.MutualFund)

	d.ID = primitive.NewObjectID()
	raw, err := bson.Marshal(d)
	require.NoError(t, err)

	var decoded emiPlanDoc
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	out := decoded.toDomain()
	assert.Equal(t, d.ID.Hex(), out.ID)
	assert.Equal(t, in.ProductID, out.ProductID)
	assert.Equal(t, in.MutualFundID, out.MutualFundID)
	assert.Equal(t, domain.CashbackRange, out.Cashback.Kind())
	assert.Equal(t, "900", out.Cashback.Display())

	t.Run("InvalidProductID", func(t *testing.T) {
		_, err := toEMIPlanDoc(domain.EMIPlan{ProductID: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("WithoutFund", func(t *testing.T) {
		d, err := toEMIPlanDoc(domain.EMIPlan{ProductID: productID.Hex()})
		require.NoError(t, err)
		assert.Nil(t, d.MutualFund)
		assert.Nil(t, d.Cashback)
	})
}
