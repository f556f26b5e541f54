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

var _ port.EMIPlansStorage = (*EMIPlansRepository)(nil)

type EMIPlansRepository struct {
	coll *mongo.Collection
}

func NewEMIPlansRepository(db *mongo.Database) EMIPlansRepository {
	return EMIPlansRepository{db.Collection(emiPlansCollection)}
}

// InsertEMIPlans writes the plans with one ordered insert.
// Plans written before a failing one are not rolled back.
func (r EMIPlansRepository) InsertEMIPlans(
	ctx context.Context, vs []domain.EMIPlan,
) ([]domain.EMIPlan, error) {
	const op = "EMIPlansRepository.InsertEMIPlans"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds := make([]emiPlanDoc, len(vs))
	batch := make([]any, len(vs))
	for i, v := range vs {
		d, err := toEMIPlanDoc(v)
		if err != nil {
			return nil, fmt.Errorf("%s: plan %d: %w", op, i, err)
		}
		d.ID = primitive.NewObjectID()
		ds[i] = d
		batch[i] = d
	}

	if _, err := r.coll.InsertMany(ctx, batch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created := make([]domain.EMIPlan, len(ds))
	for i, d := range ds {
		created[i] = d.toDomain()
	}
	return created, nil
}

func (r EMIPlansRepository) FindEMIPlansByProducts(
	ctx context.Context, productIDs []string,
) ([]domain.EMIPlan, error) {
	const op = "EMIPlansRepository.FindEMIPlansByProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids, err := objectIDs(productIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filter := bson.D{{Key: "productId", Value: bson.D{{Key: "$in", Value: ids}}}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ds []emiPlanDoc
	if err := cur.All(ctx, &ds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs := make([]domain.EMIPlan, len(ds))
	for i, d := range ds {
		vs[i] = d.toDomain()
	}
	return vs, nil
}
