package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/niksmo/emi-catalog/internal/core/port"
	"github.com/niksmo/emi-catalog/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.CatalogEventsProducer = (*CatalogEventsProducer)(nil)

// A CatalogEventsProducer publishes [domain.CatalogEvent] records keyed by
// the product they relate to.
type CatalogEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewCatalogEventsProducer(
	opts ...ProducerOpt,
) (CatalogEventsProducer, error) {
	const op = "NewCatalogEventsProducer"

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return CatalogEventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if options.cl == nil || options.encoder == nil {
		return CatalogEventsProducer{}, fmt.Errorf("%s: %w", op, ErrTooFewOpts)
	}
	return CatalogEventsProducer{options.cl, options.encoder}, nil
}

func (p CatalogEventsProducer) Close() {
	const op = "CatalogEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p CatalogEventsProducer) ProduceEvents(
	ctx context.Context, es []domain.CatalogEvent,
) error {
	const op = "CatalogEventsProducer.ProduceEvents"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(es) == 0 {
		return nil
	}

	rs, err := p.createRecords(es)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.produce(ctx, rs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p CatalogEventsProducer) createRecords(
	es []domain.CatalogEvent,
) ([]*kgo.Record, error) {
	const op = "CatalogEventsProducer.createRecords"

	rs := make([]*kgo.Record, 0, len(es))
	for _, e := range es {
		v, err := p.encoder.Encode(toSchema(e))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rs = append(rs, &kgo.Record{Key: recordKey(e), Value: v})
	}
	return rs, nil
}

func (p CatalogEventsProducer) produce(
	ctx context.Context, rs []*kgo.Record,
) error {
	const op = "CatalogEventsProducer.produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// recordKey keeps events of one product in one partition. Funds have no
// product and are keyed by their own id.
func recordKey(e domain.CatalogEvent) []byte {
	if e.ProductID != "" {
		return []byte(e.ProductID)
	}
	return []byte(e.EntityID)
}

func toSchema(e domain.CatalogEvent) schema.CatalogEventV1 {
	return schema.CatalogEventV1{
		Type:       string(e.Type),
		EntityID:   e.EntityID,
		ProductID:  e.ProductID,
		Name:       e.Name,
		OccurredAt: e.OccurredAt,
	}
}
