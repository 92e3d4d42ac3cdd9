package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID                 primitive.ObjectID   `bson:"_id" json:"_id"`
	Name               *string              `bson:"name" json:"name" validate:"required"`
	Email              *string              `bson:"email,omitempty" json:"email,omitempty"`
	Phone              *string              `bson:"phone" json:"phone" validate:"required"`
	Orders             []primitive.ObjectID `bson:"orders" json:"orders"`
	Total_amount_spent float64              `bson:"totalAmountSpent" json:"totalAmountSpent"`
	Due_amount         float64              `bson:"dueAmount" json:"dueAmount"`
	Advanced_amount    float64              `bson:"advancedAmount" json:"advancedAmount"`
	Created_at         time.Time            `bson:"createdAt" json:"createdAt"`
	Updated_at         time.Time            `bson:"updatedAt" json:"updatedAt"`
}
