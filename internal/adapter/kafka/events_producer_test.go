package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/emi-catalog/internal/adapter/kafka"
	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/niksmo/emi-catalog/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type MockProducerClient struct {
	mock.Mock
}

func (m *MockProducerClient) ProduceSync(
	ctx context.Context, rs ...*kgo.Record,
) kgo.ProduceResults {
	args := m.Called(ctx, rs)
	return args.Get(0).(kgo.ProduceResults)
}

func (m *MockProducerClient) Close() {
	m.Called()
}

type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(v any) ([]byte, error) {
	args := m.Called(v)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func TestNewCatalogEventsProducer(t *testing.T) {
	t.Run("NoOpts", func(t *testing.T) {
		_, err := kafka.NewCatalogEventsProducer()
		assert.ErrorIs(t, err, kafka.ErrTooFewOpts)
	})

	t.Run("NilEncoder", func(t *testing.T) {
		_, err := kafka.NewCatalogEventsProducer(
			kafka.ProducerExistingClientOpt(new(MockProducerClient)),
			kafka.ProducerEncoderOpt(nil),
		)
		assert.Error(t, err)
	})
}

func TestCatalogEventsProducer(t *testing.T) {
	occurredAt := time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC)
	events := []domain.CatalogEvent{
		{
			Type: domain.EMIPlanCreated, EntityID: "plan-1",
			ProductID: "product-1", OccurredAt: occurredAt,
		},
		{
			Type: domain.MutualFundCreated, EntityID: "fund-1",
			Name: "Bluechip", OccurredAt: occurredAt,
		},
	}

	newProducer := func(
		t *testing.T, cl *MockProducerClient, enc *MockEncoder,
	) kafka.CatalogEventsProducer {
		t.Helper()
		p, err := kafka.NewCatalogEventsProducer(
			kafka.ProducerExistingClientOpt(cl),
			kafka.ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)
		return p
	}

	t.Run("RecordsKeyedByProduct", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		enc.On("Encode", schema.CatalogEventV1{
			Type: "emi_plan_created", EntityID: "plan-1",
			ProductID: "product-1", OccurredAt: occurredAt,
		}).Return([]byte("v1"), nil)
		enc.On("Encode", schema.CatalogEventV1{
			Type: "mutual_fund_created", EntityID: "fund-1",
			Name: "Bluechip", OccurredAt: occurredAt,
		}).Return([]byte("v2"), nil)

		var produced []*kgo.Record
		cl.On("ProduceSync", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				produced = args.Get(1).([]*kgo.Record)
			}).
			Return(kgo.ProduceResults{})

		err := newProducer(t, cl, enc).ProduceEvents(t.Context(), events)
		require.NoError(t, err)

		require.Len(t, produced, 2)
		assert.Equal(t, []byte("product-1"), produced[0].Key)
		assert.Equal(t, []byte("v1"), produced[0].Value)
		assert.Equal(t, []byte("fund-1"), produced[1].Key)
		assert.Equal(t, []byte("v2"), produced[1].Value)
		enc.AssertExpectations(t)
	})

	t.Run("EncodeError", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		encErr := errors.New("unknown enum symbol")
		enc.On("Encode", mock.Anything).Return(nil, encErr)

		err := newProducer(t, cl, enc).ProduceEvents(t.Context(), events)

		assert.ErrorIs(t, err, encErr)
		cl.AssertNotCalled(t, "ProduceSync", mock.Anything, mock.Anything)
	})

	t.Run("BrokerError", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		enc.On("Encode", mock.Anything).Return([]byte("v"), nil)
		brokerErr := errors.New("not enough replicas")
		cl.On("ProduceSync", mock.Anything, mock.Anything).
			Return(kgo.ProduceResults{{Err: brokerErr}})

		err := newProducer(t, cl, enc).ProduceEvents(t.Context(), events)

		assert.ErrorIs(t, err, brokerErr)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := newProducer(t, cl, enc).ProduceEvents(ctx, events)

		assert.ErrorIs(t, err, context.Canceled)
		enc.AssertNotCalled(t, "Encode", mock.Anything)
	})

	t.Run("Close", func(t *testing.T) {
		cl := new(MockProducerClient)
		cl.On("Close").Return()

		newProducer(t, cl, new(MockEncoder)).Close()

		cl.AssertExpectations(t)
	})
}
