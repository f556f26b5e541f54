package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const CatalogEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "catalog",
	"name": "catalog_event",
	"fields": [
		{
			"name": "type",
			"type": {
				"type": "enum",
				"name": "catalog_event_type",
				"symbols": ["product_created", "emi_plan_created", "mutual_fund_created"]
			}
		},
		{"name": "entity_id", "type": "string"},
		{"name": "product_id", "type": "string", "default": ""},
		{"name": "name", "type": "string", "default": ""},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type CatalogEventV1 struct {
	Type       string    `avro:"type"`
	EntityID   string    `avro:"entity_id"`
	ProductID  string    `avro:"product_id"`
	Name       string    `avro:"name"`
	OccurredAt time.Time `avro:"occurred_at"`
}

// CatalogEventV1Avro panics if the schema text is invalid.
func CatalogEventV1Avro() avro.Schema {
	return avro.MustParse(CatalogEventSchemaTextV1)
}
