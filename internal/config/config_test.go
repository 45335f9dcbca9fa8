package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sweepkit.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadReadsS3Section(t *testing.T) {
	p := writeConfigFile(t, `
version: 1
s3:
  region: eu-west-1
  access_key: AKIAEXAMPLE
  secret_key: sekrit
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.S3.Region != "eu-west-1" {
		t.Fatalf("region = %q, want eu-west-1", cfg.S3.Region)
	}
	if cfg.S3.AccessKey != "AKIAEXAMPLE" || cfg.S3.SecretKey != "sekrit" {
		t.Fatalf("credentials not loaded: %+v", cfg.S3)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("SWEEPKIT_TEST_SECRET", "from-env")
	p := writeConfigFile(t, `
version: 1
s3:
  region: us-east-1
  access_key: AKIAEXAMPLE
  secret_key: ${SWEEPKIT_TEST_SECRET}
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.S3.SecretKey != "from-env" {
		t.Fatalf("secret_key = %q, want from-env", cfg.S3.SecretKey)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestValidateRejectsLoneCredential(t *testing.T) {
	cfg := &Config{Version: 1, S3: S3Config{AccessKey: "AKIAEXAMPLE"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "secret_key") {
		t.Fatalf("expected secret_key error, got: %v", err)
	}
}

func TestValidateRequiresRegionWithStaticCreds(t *testing.T) {
	cfg := &Config{Version: 1, S3: S3Config{AccessKey: "a", SecretKey: "b"}}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "s3.region") {
		t.Fatalf("expected s3.region error, got: %v", err)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() unexpected error: %v", err)
	}
}
