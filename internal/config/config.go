package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Backend names accepted by WORLD_STATE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
	BackendMongo    = "mongo"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP       HTTPConfig
	WorldState WorldStateConfig
	Payments   PaymentsConfig
}

// HTTPConfig governs the HTTP server.
type HTTPConfig struct {
	Port int
}

// WorldStateConfig selects and configures the world-state backend.
type WorldStateConfig struct {
	Backend string

	SQLitePath string

	DynamoTable    string
	DynamoEndpoint string
	AWSRegion      string
	AWSAccessKeyID string
	AWSSecretKey   string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

// PaymentsConfig configures the settlement gateway.
type PaymentsConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool
}

const (
	defaultPort            = 8080
	defaultBackend         = BackendMemory
	defaultSQLitePath      = "world_state.db"
	defaultStateTable      = "world_state"
	defaultAWSRegion       = "us-east-1"
	defaultMongoURI        = "mongodb://localhost:27017"
	defaultMongoDatabase   = "bill_ledger"
	defaultMongoCollection = "world_state"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		WorldState: WorldStateConfig{
			Backend:         strings.ToLower(strings.TrimSpace(valueOrDefault("WORLD_STATE_BACKEND", defaultBackend))),
			SQLitePath:      valueOrDefault("SQLITE_PATH", defaultSQLitePath),
			DynamoTable:     valueOrDefault("WORLD_STATE_TABLE", defaultStateTable),
			DynamoEndpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
			AWSRegion:       valueOrDefault("AWS_REGION", defaultAWSRegion),
			AWSAccessKeyID:  valueOrDefault("AWS_ACCESS_KEY_ID", "local"),
			AWSSecretKey:    valueOrDefault("AWS_SECRET_ACCESS_KEY", "local"),
			MongoURI:        valueOrDefault("MONGO_URI", defaultMongoURI),
			MongoDatabase:   valueOrDefault("MONGO_DATABASE", defaultMongoDatabase),
			MongoCollection: valueOrDefault("MONGO_COLLECTION", defaultMongoCollection),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:               isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		},
	}

	if err := ValidateBackend(cfg.WorldState.Backend); err != nil {
		return Config{}, err
	}

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	return cfg, nil
}

// ValidateBackend rejects unknown world-state backend names.
func ValidateBackend(name string) error {
	switch name {
	case BackendMemory, BackendSQLite, BackendDynamoDB, BackendMongo:
		return nil
	}
	return fmt.Errorf("invalid WORLD_STATE_BACKEND %q (want %s|%s|%s|%s)",
		name, BackendMemory, BackendSQLite, BackendDynamoDB, BackendMongo)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
