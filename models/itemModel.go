package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Item struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	Item_name      *string            `bson:"itemName" json:"itemName" validate:"required"`
	Item_price     *float64           `bson:"itemPrice" json:"itemPrice" validate:"required"`
	Item_inventory *int64             `bson:"itemInventory" json:"itemInventory" validate:"required"`
	// Total_sold is persisted but never written by any flow.
	Total_sold int64     `bson:"totalSold" json:"totalSold"`
	Created_at time.Time `bson:"createdAt" json:"createdAt"`
	Updated_at time.Time `bson:"updatedAt" json:"updatedAt"`
}
