package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	RedisAddr string
	CacheTTL  time.Duration

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	FrontendURL string

	BlobEndpoint  string
	BlobAccessKey string
	BlobSecretKey string
	BlobBucket    string
	BlobUseSSL    bool

	ReportPollInterval time.Duration
	ReportBatchSize    int
	WorkerPoolSize     int
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultJWTSecret          = "change-me-in-production"
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultRefreshTokenTTL    = 7 * 24 * time.Hour
	defaultCacheTTL           = 5 * time.Minute
	defaultReportPollInterval = 5 * time.Second
	defaultReportBatchSize    = 8
	defaultWorkerPoolSize     = 2
	defaultShutdownTimeout    = 10 * time.Second
	defaultBlobBucket         = "storefront-reports"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		JWTSecret:          getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AccessTokenTTL:     getDuration(lookup, "ACCESS_TOKEN_TTL", defaultAccessTokenTTL),
		RefreshTokenTTL:    getDuration(lookup, "REFRESH_TOKEN_TTL", defaultRefreshTokenTTL),
		RedisAddr:          getString(lookup, "REDIS_ADDR", ""),
		CacheTTL:           getDuration(lookup, "CACHE_TTL", defaultCacheTTL),
		SMTPHost:           getString(lookup, "SMTP_HOST", ""),
		SMTPPort:           getInt(lookup, "SMTP_PORT", 587),
		SMTPUser:           getString(lookup, "SMTP_USER", ""),
		SMTPPass:           getString(lookup, "SMTP_PASS", ""),
		SMTPFrom:           getString(lookup, "SMTP_FROM", ""),
		FrontendURL:        getString(lookup, "FRONTEND_URL", "http://localhost:3000"),
		BlobEndpoint:       getString(lookup, "BLOB_ENDPOINT", ""),
		BlobAccessKey:      getString(lookup, "BLOB_ACCESS_KEY", ""),
		BlobSecretKey:      getString(lookup, "BLOB_SECRET_KEY", ""),
		BlobBucket:         getString(lookup, "BLOB_BUCKET", defaultBlobBucket),
		BlobUseSSL:         getBool(lookup, "BLOB_USE_SSL", false),
		ReportPollInterval: getDuration(lookup, "REPORT_POLL_INTERVAL", defaultReportPollInterval),
		ReportBatchSize:    getInt(lookup, "REPORT_BATCH_SIZE", defaultReportBatchSize),
		WorkerPoolSize:     getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.ReportPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the response cache (empty disables caching)")
	fs.StringVar(&cfg.BlobEndpoint, "blob-endpoint", cfg.BlobEndpoint, "S3-compatible endpoint for report uploads")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent report workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between report queue polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.ReportBatchSize, "report-batch", cfg.ReportBatchSize, "Maximum reports per polling batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ReportPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ReportBatchSize <= 0 {
		cfg.ReportBatchSize = defaultReportBatchSize
	}

	if cfg.ReportPollInterval <= 0 {
		cfg.ReportPollInterval = defaultReportPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.RefreshTokenTTL <= 0 {
		cfg.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
