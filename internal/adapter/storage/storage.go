package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/emi-catalog/internal/core/port"
	"github.com/niksmo/emi-catalog/pkg/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	productsCollection    = "products"
	emiPlansCollection    = "emis"
	mutualFundsCollection = "mutualfunds"
)

var _ port.HealthChecker = (*MongoDB)(nil)

type MongoDBConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	TLSConfig      *tls.Config
}

type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoDB(ctx context.Context, cfg MongoDBConfig) (MongoDB, error) {
	const op = "NewMongoDB"
	log := slog.With("op", op)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if cfg.TLSConfig != nil {
		opts.SetTLSConfig(cfg.TLSConfig)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return MongoDB{}, fmt.Errorf("%s: %w", op, err)
	}

	s := MongoDB{client: client, db: client.Database(cfg.Database)}

	retryCfg := retry.RetryConfig{
		MaxAttempts: 5,
		Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
	}
	if err := retry.Do(ctx, retryCfg, func() error { return s.Ping(ctx) }); err != nil {
		_ = client.Disconnect(context.Background())
		return MongoDB{}, fmt.Errorf("%s: database is unavailable: %w", op, err)
	}
	log.Info("database is available", "database", cfg.Database)

	return s, nil
}

func (s MongoDB) Database() *mongo.Database {
	return s.db
}

func (s MongoDB) Ping(ctx context.Context) error {
	const op = "MongoDB.Ping"

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// EnsureIndexes creates the indexes the catalog relies on.
// It is a no-op for indexes that already exist.
func (s MongoDB) EnsureIndexes(ctx context.Context) error {
	const op = "MongoDB.EnsureIndexes"

	_, err := s.db.Collection(productsCollection).Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "variant", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return fmt.Errorf("%s: products: %w", op, err)
	}

	_, err = s.db.Collection(emiPlansCollection).Indexes().CreateOne(ctx,
		mongo.IndexModel{Keys: bson.D{{Key: "productId", Value: 1}}},
	)
	if err != nil {
		return fmt.Errorf("%s: emis: %w", op, err)
	}
	return nil
}

func (s MongoDB) Close(ctx context.Context) {
	const op = "MongoDB.Close"
	log := slog.With("op", op)

	log.Info("closing mongodb client...")

	if err := s.client.Disconnect(ctx); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("mongodb client is closed")
}
