package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-crm-management/models"
	"go-crm-management/repositories"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddOrderRequest carries the order-placement body: customer identity by
// phone plus the order payload.
type AddOrderRequest struct {
	Name  *string       `json:"name"`
	Email *string       `json:"email"`
	Phone *string       `json:"phone"`
	Order *models.Order `json:"order"`
}

type OrderController struct {
	orders    repositories.OrderRepository
	customers repositories.CustomerRepository
}

func NewOrderController(orders repositories.OrderRepository, customers repositories.CustomerRepository) *OrderController {
	return &OrderController{orders: orders, customers: customers}
}

// AddOrder runs the order-placement workflow: resolve the customer by
// phone, create one when absent, persist the order linked to the customer,
// then append the order reference and add the order's amounts to the
// customer's running totals. The three writes are separate; a failure
// between them leaves the earlier writes in place. A brand-new customer is
// seeded from the order's amounts and then incremented again by the
// generic step, so a first order is counted twice in the totals.
func (oc *OrderController) AddOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req AddOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if isBlank(req.Phone) || req.Order == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone and order details are required."})
			return
		}

		order := req.Order

		customer, err := oc.customers.FindByPhone(ctx, *req.Phone)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}

		if customer == nil {
			customer = &models.Customer{
				ID:                 primitive.NewObjectID(),
				Name:               req.Name,
				Email:              req.Email,
				Phone:              req.Phone,
				Orders:             []primitive.ObjectID{},
				Total_amount_spent: orderTotal(order),
				Due_amount:         orderDue(order),
				Advanced_amount:    0,
			}
			customer.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			customer.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			// A nameless customer must not be persisted; the failure is a
			// 500, not a 400, because only phone and order gate the request
			// itself.
			if isBlank(customer.Name) {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": "Customer validation failed: name is required"})
				return
			}
			if validationErr := validate.Struct(customer); validationErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": validationErr.Error()})
				return
			}
			if err := oc.customers.Insert(ctx, customer); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
				return
			}
		}

		if validationErr := validate.Struct(order); validationErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": validationErr.Error()})
			return
		}
		order.ID = primitive.NewObjectID()
		order.Customer = customer.ID
		if order.Items == nil {
			order.Items = []primitive.ObjectID{}
		}
		order.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		order.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		if err := oc.orders.Insert(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}

		customer.Orders = append(customer.Orders, order.ID)
		customer.Total_amount_spent += orderTotal(order)
		customer.Due_amount += orderDue(order)
		customer.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		if err := oc.customers.Update(ctx, customer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}

		notifyOrderPlaced(*order)
		c.JSON(http.StatusCreated, gin.H{"message": "Order added successfully", "order": order, "customer": customer})
	}
}

func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		allOrders, err := oc.orders.FindAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		if len(allOrders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No orders found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All orders retrieved successfully", "orders": allOrders})
	}
}

func (oc *OrderController) GetOrderByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Query("id")
		if orderId == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order ID is required"})
			return
		}

		id, err := primitive.ObjectIDFromHex(orderId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching order", "error": err.Error()})
			return
		}

		order, err := oc.orders.FindByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching order", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order retrieved successfully", "order": order})
	}
}
