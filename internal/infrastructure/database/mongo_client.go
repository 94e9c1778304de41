package database

import (
	"context"
	"fmt"

	"bill_ledger/internal/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ConnectMongo connects to MongoDB and returns the world-state collection.
func ConnectMongo(ctx context.Context, cfg config.WorldStateConfig) (*mongo.Collection, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection), nil
}
