package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

const collectionProducts = "products"

// ProductRepository reads the product catalog. The storefront never writes
// products; the catalog is maintained out of band.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ProductRepository) findOne(ctx context.Context, filter bson.M) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: find product: %v", domain.ErrStoreUnavailable, err)
	}
	return &p, nil
}
