package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"WORLD_STATE_BACKEND", "SERVER_PORT", "SQLITE_PATH", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "WORLD_STATE_TABLE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.WorldState.Backend != BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.WorldState.Backend)
	}
	if cfg.WorldState.SQLitePath != "world_state.db" || cfg.WorldState.DynamoTable != "world_state" {
		t.Fatalf("unexpected world state defaults: %+v", cfg.WorldState)
	}
	if cfg.Payments.MockMode {
		t.Fatalf("expected mock mode off")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WORLD_STATE_BACKEND", " SQLite ")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WorldState.Backend != BackendSQLite || cfg.WorldState.SQLitePath != "/tmp/x.db" {
		t.Fatalf("unexpected world state config: %+v", cfg.WorldState)
	}
	if cfg.HTTP.Port != 9090 || !cfg.Payments.MockMode {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		t.Setenv("WORLD_STATE_BACKEND", "couchdb")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown backend")
		}
	})

	t.Run("port", func(t *testing.T) {
		t.Setenv("WORLD_STATE_BACKEND", "")
		t.Setenv("SERVER_PORT", "70000")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for out of range port")
		}
	})
}
