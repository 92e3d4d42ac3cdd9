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

type ItemLookupRequest struct {
	Item_name *string `json:"itemName"`
	ID        *string `json:"id"`
}

type ItemController struct {
	items repositories.ItemRepository
}

func NewItemController(items repositories.ItemRepository) *ItemController {
	return &ItemController{items: items}
}

func (ic *ItemController) AddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var item models.Item
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required: itemName, itemPrice, itemInventory."})
			return
		}
		// Zero values count as missing, like empty strings.
		if *item.Item_name == "" || *item.Item_price == 0 || *item.Item_inventory == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required: itemName, itemPrice, itemInventory."})
			return
		}

		item.ID = primitive.NewObjectID()
		item.Total_sold = 0
		item.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		item.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

		if err := ic.items.Insert(ctx, &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Item added to inventory successfully", "item": item})
	}
}

// SearchItems looks up a single item by id, or a list of items whose names
// start with the given term (case-insensitive).
func (ic *ItemController) SearchItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req ItemLookupRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if isBlank(req.Item_name) && isBlank(req.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "itemName or id is required"})
			return
		}

		if !isBlank(req.ID) {
			id, err := primitive.ObjectIDFromHex(*req.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
				return
			}
			item, err := ic.items.FindByID(ctx, id)
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
				return
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item found", "item": item})
			return
		}

		items, err := ic.items.FindByNamePrefix(ctx, *req.Item_name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item found", "items": items})
	}
}

func (ic *ItemController) GetItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		items, err := ic.items.FindAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
			return
		}
		// An empty inventory is a 200 with an empty list, unlike the
		// customer and order listings.
		if items == nil {
			items = []models.Item{}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Items retrieved successfully", "items": items})
	}
}
