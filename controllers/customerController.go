package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-crm-management/models"
	"go-crm-management/repositories"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// AddCustomerRequest carries the add-customer body, with an optional
// embedded order to record alongside the customer.
type AddCustomerRequest struct {
	Name               *string       `json:"name"`
	Email              *string       `json:"email"`
	Phone              *string       `json:"phone"`
	Order              *models.Order `json:"order"`
	Total_amount_spent *float64      `json:"totalAmountSpent"`
	Due_amount         *float64      `json:"dueAmount"`
	Advanced_amount    *float64      `json:"advancedAmount"`
}

type CustomerLookupRequest struct {
	ID    *string `json:"id"`
	Phone *string `json:"phone"`
}

type CustomerController struct {
	customers repositories.CustomerRepository
	orders    repositories.OrderRepository
}

func NewCustomerController(customers repositories.CustomerRepository, orders repositories.OrderRepository) *CustomerController {
	return &CustomerController{customers: customers, orders: orders}
}

// AddCustomer creates a customer keyed by phone, or records an order
// against the existing one when an order payload is embedded. The
// find-then-insert window is not guarded: two racing requests with the
// same new phone can both create a customer.
func (cc *CustomerController) AddCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req AddCustomerRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if isBlank(req.Name) || isBlank(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name and phone are required."})
			return
		}

		customer, err := cc.customers.FindByPhone(ctx, *req.Phone)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}

		newOrder := req.Order

		if customer == nil {
			customer = &models.Customer{
				ID:                 primitive.NewObjectID(),
				Name:               req.Name,
				Email:              req.Email,
				Phone:              req.Phone,
				Orders:             []primitive.ObjectID{},
				Total_amount_spent: seedAmount(req.Total_amount_spent, newOrder, orderTotal),
				Due_amount:         seedAmount(req.Due_amount, newOrder, orderDue),
				Advanced_amount:    seedValue(req.Advanced_amount),
			}
			customer.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			customer.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			if err := cc.customers.Insert(ctx, customer); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
				return
			}
		}

		if newOrder != nil {
			if validationErr := validate.Struct(newOrder); validationErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": validationErr.Error()})
				return
			}
			newOrder.ID = primitive.NewObjectID()
			newOrder.Customer = customer.ID
			if newOrder.Items == nil {
				newOrder.Items = []primitive.ObjectID{}
			}
			newOrder.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			newOrder.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			if err := cc.orders.Insert(ctx, newOrder); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
				return
			}

			customer.Orders = append(customer.Orders, newOrder.ID)
			customer.Total_amount_spent += orderTotal(newOrder)
			customer.Due_amount += orderDue(newOrder)
			customer.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			if err := cc.customers.Update(ctx, customer); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
				return
			}
		}

		message := "Customer updated successfully"
		if newOrder != nil && len(customer.Orders) == 1 {
			message = "Customer added successfully"
		}
		c.JSON(http.StatusCreated, gin.H{"message": message, "customer": customer})
	}
}

func (cc *CustomerController) GetCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		allCustomers, err := cc.customers.FindAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		// Empty store is a 404 here, unlike the items listing.
		if len(allCustomers) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No customers found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All customers retrieved successfully", "customers": allCustomers})
	}
}

func (cc *CustomerController) GetCustomerByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req CustomerLookupRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if isBlank(req.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Customer ID is required"})
			return
		}

		// A malformed id surfaces as a 500, not a 404.
		id, err := primitive.ObjectIDFromHex(*req.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving customer", "error": err.Error()})
			return
		}

		customer, err := cc.customers.FindByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found with the provided ID"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving customer", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer retrieved successfully", "customer": customer})
	}
}

func (cc *CustomerController) GetCustomerByPhone() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req CustomerLookupRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if isBlank(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number is required"})
			return
		}

		customer, err := cc.customers.FindByPhone(ctx, *req.Phone)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found with the provided phone number"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer retrieved successfully", "customer": customer})
	}
}

// GetCustomerOrders returns a customer by phone with the referenced orders
// resolved inline.
func (cc *CustomerController) GetCustomerOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req CustomerLookupRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if isBlank(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number is required"})
			return
		}

		customer, err := cc.customers.FindByPhone(ctx, *req.Phone)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found with the provided phone number"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}

		orders, err := cc.orders.FindByIDs(ctx, customer.Orders)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer orders retrieved successfully", "orders": orders, "customer": customer})
	}
}

// isBlank reports a missing or empty string field. Empty strings count as
// missing in every presence check, matching the API's falsy semantics.
func isBlank(s *string) bool {
	return s == nil || *s == ""
}

// seedAmount picks an explicit seed value, falling back to the embedded
// order's amount, falling back to zero.
func seedAmount(explicit *float64, order *models.Order, amount func(*models.Order) float64) float64 {
	if explicit != nil {
		return *explicit
	}
	if order != nil {
		return amount(order)
	}
	return 0
}

func seedValue(explicit *float64) float64 {
	if explicit != nil {
		return *explicit
	}
	return 0
}

func orderTotal(order *models.Order) float64 {
	if order.Total_amount != nil {
		return *order.Total_amount
	}
	return 0
}

func orderDue(order *models.Order) float64 {
	return order.Due_amount
}
