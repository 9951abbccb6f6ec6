package config

import (
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{"DATABASE_URI": "postgres://localhost/shop"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("unexpected access ttl: %s", cfg.AccessTokenTTL)
	}
	if cfg.ReportBatchSize != defaultReportBatchSize {
		t.Fatalf("unexpected batch size: %d", cfg.ReportBatchSize)
	}
	if cfg.CacheTTL != defaultCacheTTL {
		t.Fatalf("unexpected cache ttl: %s", cfg.CacheTTL)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := map[string]string{
		"DATABASE_URI":         "postgres://localhost/shop",
		"RUN_ADDRESS":          ":9090",
		"REDIS_ADDR":           "localhost:6379",
		"REPORT_POLL_INTERVAL": "30s",
		"WORKER_POOL_SIZE":     "8",
		"SMTP_PORT":            "2525",
	}
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected redis addr: %s", cfg.RedisAddr)
	}
	if cfg.ReportPollInterval != 30*time.Second {
		t.Fatalf("unexpected poll interval: %s", cfg.ReportPollInterval)
	}
	if cfg.WorkerPoolSize != 8 {
		t.Fatalf("unexpected pool size: %d", cfg.WorkerPoolSize)
	}
	if cfg.SMTPPort != 2525 {
		t.Fatalf("unexpected smtp port: %d", cfg.SMTPPort)
	}
}

func TestLoadFlagOverrides(t *testing.T) {
	args := []string{"-a", ":7070", "-d", "postgres://db/shop", "-worker-pool", "3", "-poll-interval", "1m"}
	cfg, err := load(args, lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.WorkerPoolSize != 3 {
		t.Fatalf("unexpected pool size: %d", cfg.WorkerPoolSize)
	}
	if cfg.ReportPollInterval != time.Minute {
		t.Fatalf("unexpected poll interval: %s", cfg.ReportPollInterval)
	}
}

func TestLoadInvalidPollInterval(t *testing.T) {
	if _, err := load([]string{"-d", "x", "-poll-interval", "oops"}, lookupFrom(nil)); err == nil {
		t.Fatal("expected error for invalid poll interval")
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	env := map[string]string{
		"DATABASE_URI":     "postgres://localhost/shop",
		"WORKER_POOL_SIZE": "-1",
		"ACCESS_TOKEN_TTL": "-5m",
	}
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WorkerPoolSize != defaultWorkerPoolSize {
		t.Fatalf("unexpected pool size: %d", cfg.WorkerPoolSize)
	}
	if cfg.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("unexpected access ttl: %s", cfg.AccessTokenTTL)
	}
}
