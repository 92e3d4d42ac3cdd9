package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID              primitive.ObjectID   `bson:"_id" json:"_id"`
	Customer        primitive.ObjectID   `bson:"customer" json:"customer"`
	Items           []primitive.ObjectID `bson:"items" json:"items"`
	Status          string               `bson:"status" json:"status"`
	Total_amount    *float64             `bson:"totalAmount" json:"totalAmount" validate:"required"`
	Discount        float64              `bson:"discount" json:"discount"`
	Remarks         string               `bson:"remarks" json:"remarks"`
	Paid_amount     float64              `bson:"paidAmount" json:"paidAmount"`
	Due_amount      float64              `bson:"dueAmount" json:"dueAmount"`
	Mode_of_payment string               `bson:"modeOfPayment" json:"modeOfPayment"`
	Created_at      time.Time            `bson:"createdAt" json:"createdAt"`
	Updated_at      time.Time            `bson:"updatedAt" json:"updatedAt"`
}
