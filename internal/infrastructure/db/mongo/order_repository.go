package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// Create inserts a new order document and returns its assigned id.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if o.ID == "" {
		o.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return "", fmt.Errorf("%w: insert order: %v", domain.ErrStoreUnavailable, err)
	}
	return o.ID, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("%w: find order: %v", domain.ErrStoreUnavailable, err)
	}
	return &o, nil
}

// FindByUser returns every order owned by userID, newest first. The filter is
// applied store-side.
func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find orders: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode orders: %v", domain.ErrStoreUnavailable, err)
	}
	return orders, nil
}

// SetPaid atomically patches the order to paid. The filter matches only
// documents that are still unpaid or already carry the same transaction id,
// so concurrent retries with a different confirmation cannot overwrite an
// existing payment record.
func (r *OrderRepository) SetPaid(ctx context.Context, id string, result domain.PaymentResult, paidAt time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id": id,
		"$or": []bson.M{
			{"is_paid": bson.M{"$ne": true}},
			{"payment_result.transaction_id": result.TransactionID},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"is_paid": true,
			"paid_at": paidAt.UTC(),
			"payment_result": bson.M{
				"transaction_id": result.TransactionID,
				"status":         result.Status,
				"email_address":  result.Email,
			},
		},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("%w: mark order paid: %v", domain.ErrStoreUnavailable, err)
	}
	return res.MatchedCount > 0, nil
}

// EnsureIndexes creates the indexes the order queries rely on.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "payment_result.transaction_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
