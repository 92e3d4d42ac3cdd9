package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of an order. The order reference is not checked
// against the order collection and the parent order's items list is not
// updated when a line is added.
type OrderItem struct {
	ID         primitive.ObjectID  `bson:"_id" json:"_id"`
	Order      *primitive.ObjectID `bson:"order" json:"order" validate:"required"`
	Item_name  *string             `bson:"itemName" json:"itemName" validate:"required"`
	Quantity   *int64              `bson:"quantity" json:"quantity" validate:"required"`
	Price      *float64            `bson:"price" json:"price" validate:"required"`
	Total      *float64            `bson:"total" json:"total" validate:"required"`
	Created_at time.Time           `bson:"createdAt" json:"createdAt"`
	Updated_at time.Time           `bson:"updatedAt" json:"updatedAt"`
}
