package config

import (
	"testing"
	"time"
)

// exportEnvVars lists all export-related env vars that must be cleared between tests.
var exportEnvVars = []string{
	"LEDGER_EXPORT_INTERVAL", "LEDGER_EXPORT_S3_BUCKET", "LEDGER_EXPORT_S3_ENDPOINT",
	"LEDGER_EXPORT_S3_REGION", "LEDGER_EXPORT_S3_KEY",
}

func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LEDGER_DATABASE_URL", "LEDGER_HTTP_ADDR", "LEDGER_NATS_URL", "LEDGER_AUTH_TOKEN", "LEDGER_ADMIN"} {
		t.Setenv(key, "")
	}
	for _, key := range exportEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name         string
		env          map[string]string
		wantErr      bool
		wantHTTPAddr string
		wantNATSURL  string
	}{
		{
			name:    "MissingDatabaseURL",
			env:     map[string]string{"LEDGER_ADMIN": "admin"},
			wantErr: true,
		},
		{
			name:    "MissingAdmin",
			env:     map[string]string{"LEDGER_DATABASE_URL": "postgres://localhost/ledger"},
			wantErr: true,
		},
		{
			name: "Defaults",
			env: map[string]string{
				"LEDGER_DATABASE_URL": "postgres://localhost/ledger",
				"LEDGER_ADMIN":        "admin",
			},
			wantHTTPAddr: ":8080",
		},
		{
			name: "Custom",
			env: map[string]string{
				"LEDGER_DATABASE_URL": "postgres://db:5432/ledger",
				"LEDGER_ADMIN":        "treasury-ops",
				"LEDGER_HTTP_ADDR":    ":3000",
				"LEDGER_NATS_URL":     "nats://localhost:4222",
			},
			wantHTTPAddr: ":3000",
			wantNATSURL:  "nats://localhost:4222",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DatabaseURL != tc.env["LEDGER_DATABASE_URL"] {
				t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, tc.env["LEDGER_DATABASE_URL"])
			}
			if cfg.Admin != tc.env["LEDGER_ADMIN"] {
				t.Errorf("Admin = %q, want %q", cfg.Admin, tc.env["LEDGER_ADMIN"])
			}
			if cfg.HTTPAddr != tc.wantHTTPAddr {
				t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, tc.wantHTTPAddr)
			}
			if cfg.NATSURL != tc.wantNATSURL {
				t.Errorf("NATSURL = %q, want %q", cfg.NATSURL, tc.wantNATSURL)
			}
		})
	}
}

func TestLoadExportDefaults(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("LEDGER_DATABASE_URL", "postgres://localhost/ledger")
	t.Setenv("LEDGER_ADMIN", "admin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExportInterval != 15*time.Minute {
		t.Errorf("ExportInterval = %v, want 15m", cfg.ExportInterval)
	}
	if cfg.ExportS3Region != "us-east-1" {
		t.Errorf("ExportS3Region = %q, want %q", cfg.ExportS3Region, "us-east-1")
	}
	if cfg.ExportS3Key != "loanledger/audit.jsonl" {
		t.Errorf("ExportS3Key = %q, want %q", cfg.ExportS3Key, "loanledger/audit.jsonl")
	}
}

func TestLoadExportInvalidInterval(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("LEDGER_DATABASE_URL", "postgres://localhost/ledger")
	t.Setenv("LEDGER_ADMIN", "admin")
	t.Setenv("LEDGER_EXPORT_INTERVAL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid LEDGER_EXPORT_INTERVAL")
	}
}

func TestLoadExportDisabled(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("LEDGER_DATABASE_URL", "postgres://localhost/ledger")
	t.Setenv("LEDGER_ADMIN", "admin")
	t.Setenv("LEDGER_EXPORT_INTERVAL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExportInterval != 0 {
		t.Errorf("ExportInterval = %v, want 0 (disabled)", cfg.ExportInterval)
	}
}

func TestEnvOrDefault(t *testing.T) {
	for _, tc := range []struct {
		name     string
		key      string
		envVal   string
		fallback string
		want     string
	}{
		{"EmptyUsesDefault", "TEST_ENVDEFAULT_EMPTY", "", "default-val", "default-val"},
		{"SetUsesEnv", "TEST_ENVDEFAULT_SET", "custom", "default-val", "custom"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envVal)
			got := envOrDefault(tc.key, tc.fallback)
			if got != tc.want {
				t.Errorf("envOrDefault(%q, %q) = %q, want %q", tc.key, tc.fallback, got, tc.want)
			}
		})
	}
}
