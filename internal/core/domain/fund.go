package domain

type MutualFund struct {
	ID               string
	Name             string
	AnnualReturnRate float64
	RiskLevel        string
	Description      string
}

func (f MutualFund) Validate() error {
	var v validation

	v.require(f.Name != "", "name", "mutual fund name is required")
	v.require(f.RiskLevel != "", "riskLevel", "risk level is required")

	return v.err()
}
