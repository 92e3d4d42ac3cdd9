package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddOrderItemRequiresAllFields(t *testing.T) {
	env := newTestEnv()

	w := doJSON(t, env.router, http.MethodPost, "/orders/items", map[string]interface{}{
		"itemName": "Headphones",
		"quantity": 2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero values count as missing.
	w = doJSON(t, env.router, http.MethodPost, "/orders/items", map[string]interface{}{
		"order":    primitive.NewObjectID().Hex(),
		"itemName": "Headphones",
		"quantity": 0,
		"price":    49.99,
		"total":    99.98,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env.router, http.MethodPost, "/orders/items", map[string]interface{}{
		"order":    primitive.NewObjectID().Hex(),
		"itemName": "Headphones",
		"quantity": 2,
		"price":    49.99,
		"total":    0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.orderItems.docs)
}

func TestAddOrderItem(t *testing.T) {
	env := newTestEnv()
	orderID := primitive.NewObjectID()

	w := doJSON(t, env.router, http.MethodPost, "/orders/items", map[string]interface{}{
		"order":    orderID.Hex(),
		"itemName": "Headphones",
		"quantity": 2,
		"price":    49.99,
		"total":    99.98,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Order item added successfully", decodeBody(t, w)["message"])

	require.Len(t, env.orderItems.docs, 1)
	stored := env.orderItems.docs[0]
	assert.Equal(t, orderID, *stored.Order)
	assert.Equal(t, int64(2), *stored.Quantity)
	assert.Equal(t, 99.98, *stored.Total)
}

func TestAddOrderItemWithUnknownOrderSucceeds(t *testing.T) {
	env := newTestEnv()

	// The order reference is taken as given: no lookup, no back-link onto
	// the order's items list.
	w := doJSON(t, env.router, http.MethodPost, "/orders/items", map[string]interface{}{
		"order":    primitive.NewObjectID().Hex(),
		"itemName": "Headphones",
		"quantity": 1,
		"price":    49.99,
		"total":    49.99,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, env.orderItems.docs, 1)
	assert.Empty(t, env.orders.docs)
}
