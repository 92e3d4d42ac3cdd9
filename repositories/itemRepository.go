package repositories

import (
	"context"
	"errors"
	"regexp"

	"go-crm-management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ItemRepository interface {
	Insert(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
	// FindByNamePrefix matches item names that start with the given prefix,
	// case-insensitively: "Head" matches "Headphones" but not
	// "Wireless Headphones".
	FindByNamePrefix(ctx context.Context, prefix string) ([]models.Item, error)
	FindAll(ctx context.Context) ([]models.Item, error)
}

type itemRepository struct {
	collection *mongo.Collection
}

func NewItemRepository(collection *mongo.Collection) ItemRepository {
	return &itemRepository{collection: collection}
}

func (r *itemRepository) Insert(ctx context.Context, item *models.Item) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *itemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// namePrefixPattern anchors the search term at the start of the name and
// escapes regex metacharacters so "C++ Book" searches literally.
func namePrefixPattern(prefix string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix), Options: "i"}
}

func (r *itemRepository) FindByNamePrefix(ctx context.Context, prefix string) ([]models.Item, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"itemName": namePrefixPattern(prefix)})
	if err != nil {
		return nil, err
	}
	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
