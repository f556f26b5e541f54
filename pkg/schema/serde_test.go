package schema_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/emi-catalog/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeCatalogEventV1(t *testing.T) {
	const subject = "catalog-events-value"

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeCatalogEventV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeCatalogEventV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := schema.NewSerdeCatalogEventV1(
			t.Context(),
			schema.SubjectOpt(""),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
	})

	t.Run("RegistryFailure", func(t *testing.T) {
		si := new(MockSchemaIdentifier)
		regErr := errors.New("registry is down")
		si.On(
			"DetermineID", t.Context(), subject, schema.CatalogEventSchemaTextV1,
		).Return(0, regErr)

		_, err := schema.NewSerdeCatalogEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(si),
		)
		assert.ErrorIs(t, err, regErr)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		si := new(MockSchemaIdentifier)
		schemaID := 7
		si.On(
			"DetermineID", t.Context(), subject, schema.CatalogEventSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeCatalogEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(si),
		)
		require.NoError(t, err)

		event1 := schema.CatalogEventV1{
			Type:       "product_created",
			EntityID:   "665f1c2e8b3e4a0012345678",
			ProductID:  "665f1c2e8b3e4a0012345678",
			Name:       "iPhone 15",
			OccurredAt: time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC),
		}

		data, err := serde.Encode(event1)
		require.NoError(t, err)
		require.Greater(t, len(data), 5)
		assert.Equal(t, byte(0), data[0])
		assert.Equal(t, []byte{0, 0, 0, 7}, data[1:5])

		var event2 schema.CatalogEventV1
		require.NoError(t, serde.Decode(data, &event2))

		assert.Equal(t, event1.Type, event2.Type)
		assert.Equal(t, event1.EntityID, event2.EntityID)
		assert.Equal(t, event1.ProductID, event2.ProductID)
		assert.Equal(t, event1.Name, event2.Name)
		assert.True(t, event1.OccurredAt.Equal(event2.OccurredAt))
		si.AssertExpectations(t)
	})
}
