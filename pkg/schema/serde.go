package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var ErrTooFewOpts = errors.New("too few options")

// A Serde encodes values in the registry wire format: magic byte,
// schema id and the Avro payload. *sr.Serde satisfies it.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type Opt func(*serdeOpts) error

type serdeOpts struct {
	subject string
	si      SchemaIdentifier
}

func SubjectOpt(subject string) Opt {
	return func(so *serdeOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		so.subject = subject
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(so *serdeOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		so.si = si
		return nil
	}
}

func collectOpts(opts []Opt) (serdeOpts, error) {
	var so serdeOpts
	for _, o := range opts {
		if err := o(&so); err != nil {
			return so, err
		}
	}
	if so.subject == "" || so.si == nil {
		return so, ErrTooFewOpts
	}
	return so, nil
}

// NewSerdeCatalogEventV1 registers CatalogEventV1 under the id the registry
// assigns to CatalogEventSchemaTextV1 for the subject.
func NewSerdeCatalogEventV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeCatalogEventV1"
	s, err := newAvroSerde[CatalogEventV1](ctx, CatalogEventSchemaTextV1, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func newAvroSerde[T any](
	ctx context.Context, schemaText string, opts []Opt,
) (*sr.Serde, error) {
	so, err := collectOpts(opts)
	if err != nil {
		return nil, err
	}

	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return nil, err
	}

	id, err := so.si.DetermineID(ctx, so.subject, schemaText)
	if err != nil {
		return nil, err
	}

	var (
		s    sr.Serde
		zero T
	)
	s.Register(id, zero,
		sr.EncodeFn(func(v any) ([]byte, error) {
			return avro.Marshal(avroSchema, v)
		}),
		sr.DecodeFn(func(data []byte, v any) error {
			return avro.Unmarshal(avroSchema, data, v)
		}),
	)
	return &s, nil
}
