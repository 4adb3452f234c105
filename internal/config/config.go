package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DatabaseURL string // LEDGER_DATABASE_URL (required)
	HTTPAddr    string // LEDGER_HTTP_ADDR (default ":8080")
	NATSURL     string // LEDGER_NATS_URL (optional, empty = no events)
	AuthToken   string // LEDGER_AUTH_TOKEN (optional, empty = auth disabled)

	// Admin is the identity allowed to authorize and revoke originators,
	// fixed at deployment like a contract's deploy-time admin.
	Admin string // LEDGER_ADMIN (required)

	// Audit export settings
	ExportInterval   time.Duration // LEDGER_EXPORT_INTERVAL (default 15m; 0 = disabled)
	ExportS3Bucket   string        // LEDGER_EXPORT_S3_BUCKET (enables S3 when set)
	ExportS3Endpoint string        // LEDGER_EXPORT_S3_ENDPOINT (custom endpoint for MinIO)
	ExportS3Region   string        // LEDGER_EXPORT_S3_REGION (default "us-east-1")
	ExportS3Key      string        // LEDGER_EXPORT_S3_KEY (default "loanledger/audit.jsonl")
	ExportGitRepo    string        // LEDGER_EXPORT_GIT_REPO (enables git when set; path to a local clone)
	ExportGitFile    string        // LEDGER_EXPORT_GIT_FILE (default "ledger.jsonl")
	ExportGitBranch  string        // LEDGER_EXPORT_GIT_BRANCH (default "main")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:      os.Getenv("LEDGER_DATABASE_URL"),
		HTTPAddr:         envOrDefault("LEDGER_HTTP_ADDR", ":8080"),
		NATSURL:          os.Getenv("LEDGER_NATS_URL"),
		AuthToken:        os.Getenv("LEDGER_AUTH_TOKEN"),
		Admin:            os.Getenv("LEDGER_ADMIN"),
		ExportS3Bucket:   os.Getenv("LEDGER_EXPORT_S3_BUCKET"),
		ExportS3Endpoint: os.Getenv("LEDGER_EXPORT_S3_ENDPOINT"),
		ExportS3Region:   envOrDefault("LEDGER_EXPORT_S3_REGION", "us-east-1"),
		ExportS3Key:      envOrDefault("LEDGER_EXPORT_S3_KEY", "loanledger/audit.jsonl"),
		ExportGitRepo:    os.Getenv("LEDGER_EXPORT_GIT_REPO"),
		ExportGitFile:    envOrDefault("LEDGER_EXPORT_GIT_FILE", "ledger.jsonl"),
		ExportGitBranch:  envOrDefault("LEDGER_EXPORT_GIT_BRANCH", "main"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("LEDGER_DATABASE_URL is required")
	}
	if c.Admin == "" {
		return nil, fmt.Errorf("LEDGER_ADMIN is required")
	}

	intervalStr := envOrDefault("LEDGER_EXPORT_INTERVAL", "15m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("LEDGER_EXPORT_INTERVAL: %w", err)
		}
		c.ExportInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
