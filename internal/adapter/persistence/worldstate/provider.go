package worldstate

import (
	"context"
	"fmt"
	"log"

	"bill_ledger/internal/config"
	"bill_ledger/internal/infrastructure/database"
	"bill_ledger/internal/usecase/interfaces"
)

// NewFromConfig builds the world-state provider selected by cfg.Backend.
func NewFromConfig(ctx context.Context, cfg config.WorldStateConfig) (interfaces.IWorldStateProvider, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		log.Printf("[worldstate] using in-memory backend")
		return NewMemoryWorldState(), nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		p, err := NewSQLiteWorldState(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Printf("[worldstate] using sqlite backend path=%s", cfg.SQLitePath)
		return p, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[worldstate] using dynamodb backend table=%s", cfg.DynamoTable)
		return NewDynamoWorldState(ddb, cfg.DynamoTable), nil

	case config.BackendMongo:
		coll, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[worldstate] using mongo backend db=%s collection=%s", cfg.MongoDatabase, cfg.MongoCollection)
		return NewMongoWorldState(coll), nil
	}
	return nil, config.ValidateBackend(cfg.Backend)
}

// MustNewFromConfig is NewFromConfig for process start-up.
func MustNewFromConfig(ctx context.Context, cfg config.WorldStateConfig) interfaces.IWorldStateProvider {
	p, err := NewFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize world state: %v", fmt.Errorf("%s backend: %w", cfg.Backend, err))
	}
	return p
}
