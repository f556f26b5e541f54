package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/niksmo/emi-catalog/config"
	"github.com/niksmo/emi-catalog/internal/adapter"
	"github.com/niksmo/emi-catalog/internal/adapter/httphandler"
	"github.com/niksmo/emi-catalog/internal/adapter/kafka"
	"github.com/niksmo/emi-catalog/internal/adapter/storage"
	"github.com/niksmo/emi-catalog/internal/core/port"
	"github.com/niksmo/emi-catalog/internal/core/service"
	"github.com/niksmo/emi-catalog/pkg/retry"
	"github.com/niksmo/emi-catalog/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	mongoDB    storage.MongoDB
	producer   *kafka.CatalogEventsProducer
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initProducer()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	var tlsConfig *tls.Config
	if tlsFiles := app.cfg.Mongo.TLS; tlsFiles.Enabled() {
		var err error
		tlsConfig, err = adapter.MakeTLSConfig(
			tlsFiles.CA, tlsFiles.Cert, tlsFiles.Key,
		)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	mongoDB, err := storage.NewMongoDB(app.ctx, storage.MongoDBConfig{
		URI:            app.cfg.Mongo.URI,
		Database:       app.cfg.Mongo.Database,
		ConnectTimeout: app.cfg.Mongo.ConnectTimeout,
		TLSConfig:      tlsConfig,
	})
	if err != nil {
		app.fallDown(op, err)
	}

	if err := mongoDB.EnsureIndexes(app.ctx); err != nil {
		app.fallDown(op, err)
	}

	app.mongoDB = mongoDB
}

// initProducer leaves the producer nil when no seed brokers are configured.
func (app *App) initProducer() {
	const op = "App.initProducer"

	if !app.cfg.Broker.Enabled() {
		slog.Info("catalog events are disabled", "op", op)
		return
	}

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	topic := app.cfg.Broker.Topics.CatalogEvents
	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.ExponentialBackoff(500 * time.Millisecond),
	}
	eventSerde, err := retry.DoWithResult(app.ctx, retryCfg,
		func() (schema.Serde, error) {
			return schema.NewSerdeCatalogEventV1(
				app.ctx,
				schema.SubjectOpt(topic+"-value"),
				schema.SchemaIdentifierOpt(schema.NewRegistryIdentifier(srClient)),
			)
		},
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewCatalogEventsProducer(
		kafka.ProducerClientOpt(app.ctx, app.cfg.Broker.SeedBrokers, topic),
		kafka.ProducerEncoderOpt(eventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producer = &producer
}

func (app *App) initCoreService() {
	var events port.CatalogEventsProducer
	if app.producer != nil {
		events = app.producer
	}

	db := app.mongoDB.Database()
	app.service = service.New(
		storage.NewProductsRepository(db),
		storage.NewEMIPlansRepository(db),
		storage.NewMutualFundsRepository(db),
		app.mongoDB,
		events,
	)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.service, app.service)
	httphandler.RegisterEMIPlans(mux, app.service, app.service)
	httphandler.RegisterMutualFunds(mux, app.service)
	httphandler.RegisterHealth(mux, app.service)

	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, app.cfg.HTTPCORSOrigins, mux,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.producer != nil {
		app.producer.Close()
	}
	app.mongoDB.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
