package controllers

import (
	"context"
	"net/http"
	"time"

	"go-crm-management/models"
	"go-crm-management/repositories"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItemController struct {
	orderItems repositories.OrderItemRepository
}

func NewOrderItemController(orderItems repositories.OrderItemRepository) *OrderItemController {
	return &OrderItemController{orderItems: orderItems}
}

// AddOrderItem records one line of an order. The order id is taken as
// given: it is not checked against the order collection and the parent
// order's items list is not updated.
func (oic *OrderItemController) AddOrderItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var orderItem models.OrderItem
		if err := c.BindJSON(&orderItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if validationErr := validate.Struct(&orderItem); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required: order, itemName, quantity, price, total."})
			return
		}
		// Zero values count as missing, like empty strings.
		if orderItem.Order.IsZero() || *orderItem.Item_name == "" || *orderItem.Quantity == 0 || *orderItem.Price == 0 || *orderItem.Total == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required: order, itemName, quantity, price, total."})
			return
		}

		orderItem.ID = primitive.NewObjectID()
		orderItem.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		orderItem.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

		if err := oic.orderItems.Insert(ctx, &orderItem); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Order item added successfully", "item": orderItem})
	}
}
