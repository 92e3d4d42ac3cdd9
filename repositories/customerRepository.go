package repositories

import (
	"context"
	"errors"

	"go-crm-management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository interface {
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	FindAll(ctx context.Context) ([]models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) error
	// Update replaces the whole document. The order-placement flow is a
	// read-modify-write on the customer with no concurrency control; two
	// racing requests can lose an update or create duplicate customers for
	// the same new phone, matching the original behavior.
	Update(ctx context.Context, customer *models.Customer) error
}

type customerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(collection *mongo.Collection) CustomerRepository {
	return &customerRepository{collection: collection}
}

func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	// Exact-string match only: a phone stored with dashes will not match a
	// lookup without them.
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var allCustomers []models.Customer
	if err := cursor.All(ctx, &allCustomers); err != nil {
		return nil, err
	}
	return allCustomers, nil
}

func (r *customerRepository) Insert(ctx context.Context, customer *models.Customer) error {
	_, err := r.collection.InsertOne(ctx, customer)
	return err
}

func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	return err
}
