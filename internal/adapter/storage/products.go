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

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	coll *mongo.Collection
}

func NewProductsRepository(db *mongo.Database) ProductsRepository {
	return ProductsRepository{db.Collection(productsCollection)}
}

func (r ProductsRepository) InsertProduct(
	ctx context.Context, v domain.Product,
) (domain.Product, error) {
	const op = "ProductsRepository.InsertProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	d := toProductDoc(v)
	d.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Product{}, fmt.Errorf(
				"%s: variant %q: %w", op, v.Variant, domain.ErrDuplicate,
			)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return d.toDomain(), nil
}

func (r ProductsRepository) AllProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.AllProducts"

	vs, err := r.find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

// ProductsByName returns every variant with exactly the given name.
func (r ProductsRepository) ProductsByName(
	ctx context.Context, name string,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ProductsByName"

	vs, err := r.find(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

func (r ProductsRepository) find(
	ctx context.Context, filter bson.D,
) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var ds []productDoc
	if err := cur.All(ctx, &ds); err != nil {
		return nil, err
	}

	vs := make([]domain.Product, len(ds))
	for i, d := range ds {
		vs[i] = d.toDomain()
	}
	return vs, nil
}
