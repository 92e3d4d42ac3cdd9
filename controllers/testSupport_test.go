package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"go-crm-management/controllers"
	"go-crm-management/models"
	"go-crm-management/repositories"
	"go-crm-management/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ─── In-memory repository fakes ───────────────────────────────────────────────

type fakeCustomerRepository struct {
	docs       map[primitive.ObjectID]models.Customer
	failInsert bool
	failUpdate bool
}

func newFakeCustomerRepository() *fakeCustomerRepository {
	return &fakeCustomerRepository{docs: make(map[primitive.ObjectID]models.Customer)}
}

func (f *fakeCustomerRepository) FindByPhone(_ context.Context, phone string) (*models.Customer, error) {
	for _, doc := range f.docs {
		if doc.Phone != nil && *doc.Phone == phone {
			found := doc
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCustomerRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Customer, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeCustomerRepository) FindAll(_ context.Context) ([]models.Customer, error) {
	var all []models.Customer
	for _, doc := range f.docs {
		all = append(all, doc)
	}
	return all, nil
}

func (f *fakeCustomerRepository) Insert(_ context.Context, customer *models.Customer) error {
	if f.failInsert {
		return errors.New("insert failed")
	}
	f.docs[customer.ID] = *customer
	return nil
}

func (f *fakeCustomerRepository) Update(_ context.Context, customer *models.Customer) error {
	if f.failUpdate {
		return errors.New("update failed")
	}
	f.docs[customer.ID] = *customer
	return nil
}

type fakeOrderRepository struct {
	docs map[primitive.ObjectID]models.Order
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{docs: make(map[primitive.ObjectID]models.Order)}
}

func (f *fakeOrderRepository) Insert(_ context.Context, order *models.Order) error {
	f.docs[order.ID] = *order
	return nil
}

func (f *fakeOrderRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeOrderRepository) FindAll(_ context.Context) ([]models.Order, error) {
	var all []models.Order
	for _, doc := range f.docs {
		all = append(all, doc)
	}
	return all, nil
}

func (f *fakeOrderRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Order, error) {
	orders := []models.Order{}
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			orders = append(orders, doc)
		}
	}
	return orders, nil
}

type fakeItemRepository struct {
	docs []models.Item
}

func (f *fakeItemRepository) Insert(_ context.Context, item *models.Item) error {
	f.docs = append(f.docs, *item)
	return nil
}

func (f *fakeItemRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Item, error) {
	for _, doc := range f.docs {
		if doc.ID == id {
			found := doc
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeItemRepository) FindByNamePrefix(_ context.Context, prefix string) ([]models.Item, error) {
	var items []models.Item
	for _, doc := range f.docs {
		if doc.Item_name != nil && strings.HasPrefix(strings.ToLower(*doc.Item_name), strings.ToLower(prefix)) {
			items = append(items, doc)
		}
	}
	return items, nil
}

func (f *fakeItemRepository) FindAll(_ context.Context) ([]models.Item, error) {
	return f.docs, nil
}

type fakeOrderItemRepository struct {
	docs []models.OrderItem
}

func (f *fakeOrderItemRepository) Insert(_ context.Context, orderItem *models.OrderItem) error {
	f.docs = append(f.docs, *orderItem)
	return nil
}

// ─── Harness helpers ──────────────────────────────────────────────────────────

type testEnv struct {
	router     *gin.Engine
	customers  *fakeCustomerRepository
	items      *fakeItemRepository
	orders     *fakeOrderRepository
	orderItems *fakeOrderItemRepository
}

func newTestEnv() *testEnv {
	env := &testEnv{
		customers:  newFakeCustomerRepository(),
		items:      &fakeItemRepository{},
		orders:     newFakeOrderRepository(),
		orderItems: &fakeOrderItemRepository{},
	}
	router := gin.New()
	routes.CustomerRoutes(router, controllers.NewCustomerController(env.customers, env.orders))
	routes.ItemRoutes(router, controllers.NewItemController(env.items))
	routes.OrderRoutes(router, controllers.NewOrderController(env.orders, env.customers), controllers.NewOrderItemController(env.orderItems))
	env.router = router
	return env
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
