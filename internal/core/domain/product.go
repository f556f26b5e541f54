package domain

import "math"

type (
	Product struct {
		ID       string
		Name     string
		Variant  string
		MRP      float64
		Price    float64
		ImageURL []string
		Features []string
	}

	// A ProductView is a product with its EMI plans resolved.
	ProductView struct {
		Product
		EMIPlans []EMIPlanView
	}
)

// DiscountPercent returns the discount of the selling price against MRP,
// rounded to a whole percent.
func (p Product) DiscountPercent() int {
	if p.MRP <= 0 {
		return 0
	}
	return int(math.Round((p.MRP - p.Price) / p.MRP * 100))
}

func (p Product) Savings() float64 {
	return p.MRP - p.Price
}

func (p Product) Validate() error {
	var v validation

	v.require(p.Name != "", "name", "name is required")
	v.require(p.Variant != "", "variant", "variant is required")
	v.require(p.MRP >= 0, "MRP", "MRP must not be negative")
	v.require(p.Price >= 0, "price", "price must not be negative")
	v.require(p.Price <= p.MRP, "price", "price must not exceed MRP")
	v.require(len(p.ImageURL) != 0, "imageUrl", "at least one image url is required")

	return v.err()
}
