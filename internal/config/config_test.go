package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SALES_DATA_FILE", "/data/sales.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Data.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Data.Timeout)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected redis disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Redis.TTL != 5*time.Minute {
		t.Errorf("expected default redis TTL 5m, got %v", cfg.Redis.TTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SALES_SERVER_PORT", "9090")
	t.Setenv("SALES_DATA_URL", "https://example.com/sales.csv")
	t.Setenv("SALES_REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Data.URL != "https://example.com/sales.csv" {
		t.Errorf("expected data url override, got %q", cfg.Data.URL)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr override, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_RequiresDataSource(t *testing.T) {
	if _, err := Load(); err == nil {
		t.Error("expected an error when neither data.file nor data.url is set")
	}
}
