package storage

import (
	"context"
	"fmt"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/niksmo/emi-catalog/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ port.MutualFundsStorage = (*MutualFundsRepository)(nil)

type MutualFundsRepository struct {
	coll *mongo.Collection
}

func NewMutualFundsRepository(db *mongo.Database) MutualFundsRepository {
	return MutualFundsRepository{db.Collection(mutualFundsCollection)}
}

func (r MutualFundsRepository) InsertMutualFund(
	ctx context.Context, v domain.MutualFund,
) (domain.MutualFund, error) {
	const op = "MutualFundsRepository.InsertMutualFund"

	if err := ctx.Err(); err != nil {
		return domain.MutualFund{}, fmt.Errorf("%s: %w", op, err)
	}

	d := toMutualFundDoc(v)
	d.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return domain.MutualFund{}, fmt.Errorf("%s: %w", op, err)
	}
	return d.toDomain(), nil
}

func (r MutualFundsRepository) FindMutualFunds(
	ctx context.Context, ids []string,
) ([]domain.MutualFund, error) {
	const op = "MutualFundsRepository.FindMutualFunds"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oids, err := objectIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ds []mutualFundDoc
	if err := cur.All(ctx, &ds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs := make([]domain.MutualFund, len(ds))
	for i, d := range ds {
		vs[i] = d.toDomain()
	}
	return vs, nil
}
