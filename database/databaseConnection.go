package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client against MONGODB_URI and verifies the connection
// with a ping. The caller owns the client and must Disconnect it on
// shutdown; there is no lazy global connection.
//
// No indexes are created here. In particular, customer phone uniqueness is
// deliberately left unenforced so the find-then-insert window of the order
// workflow stays observable.
func Connect(ctx context.Context) (*mongo.Client, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Println("DB connected successfully")
	return client, nil
}

// OpenCollection returns a handle on a collection of the configured
// database (MONGODB_DATABASE, default "crm").
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	databaseName := os.Getenv("MONGODB_DATABASE")
	if databaseName == "" {
		databaseName = "crm"
	}
	return client.Database(databaseName).Collection(collectionName)
}
