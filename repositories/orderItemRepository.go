package repositories

import (
	"context"

	"go-crm-management/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OrderItemRepository interface {
	// Insert persists a line item. The referenced order is not checked for
	// existence and the parent order's items list is left untouched.
	Insert(ctx context.Context, orderItem *models.OrderItem) error
}

type orderItemRepository struct {
	collection *mongo.Collection
}

func NewOrderItemRepository(collection *mongo.Collection) OrderItemRepository {
	return &orderItemRepository{collection: collection}
}

func (r *orderItemRepository) Insert(ctx context.Context, orderItem *models.OrderItem) error {
	_, err := r.collection.InsertOne(ctx, orderItem)
	return err
}
