package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB connection instance
var MongoClient *mongo.Client

var dbName string

// ConnectMongoDB initializes the database connection
func ConnectMongoDB(uri, name string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	// Ping the database to verify connection
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}

	fmt.Println("✅ Connected to MongoDB")
	UseClient(client, name)
	return client.Database(name)
}

// UseClient points the package at an already-connected client. Used by
// ConnectMongoDB and by tests that bring their own client.
func UseClient(client *mongo.Client, name string) {
	MongoClient = client
	dbName = name
}

// GetCollection returns a MongoDB collection
func GetCollection(collectionName string) *mongo.Collection {
	return MongoClient.Database(dbName).Collection(collectionName)
}

// EnsureIndexes creates the unique indexes the swipe/match invariants rely
// on: one swipe per (from, to) pair and one match per unordered user pair.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := GetCollection("swipes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "from_user_id", Value: 1}, {Key: "to_user_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create swipes index: %w", err)
	}

	_, err = GetCollection("matches").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pair_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create matches index: %w", err)
	}

	_, err = GetCollection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	return nil
}
