package domain

import "time"

type CatalogEventType string

const (
	ProductCreated    CatalogEventType = "product_created"
	EMIPlanCreated    CatalogEventType = "emi_plan_created"
	MutualFundCreated CatalogEventType = "mutual_fund_created"
)

// A CatalogEvent notifies downstream consumers about a created record.
type CatalogEvent struct {
	Type       CatalogEventType
	EntityID   string
	ProductID  string
	Name       string
	OccurredAt time.Time
}
