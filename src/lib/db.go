package lib

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devnetwork/Backend-Dev-Network/src/config"
)

var DB *mongo.Database

var Cfg *config.Config

// ConnectDB initializes the MongoDB connection and sets the global DB variable
func ConnectDB(cfg *config.Config) {
	Cfg = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	if err := client.Ping(ctx, nil); err != nil {
		panic("Failed to ping database: " + err.Error())
	}

	DB = client.Database(cfg.DBName)

	log.Println("Connected to MongoDB!")
}

// EnsureIndexes creates the indexes the data model relies on: one profile per
// user and newest-first post listing
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := DB.Collection("profiles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"user": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("Failed to create profile index:", err)
	}

	_, err = DB.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.M{"date": -1},
	})
	if err != nil {
		log.Fatal("Failed to create post index:", err)
	}

	log.Println("Database indexes ensured!")
}
