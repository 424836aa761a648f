package config_test

import (
	"testing"
	"time"

	"github.com/framepromptly/framepromptly/internal/config"
)

func TestServerConfigDefaults(t *testing.T) {
	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.ReadTimeoutDuration() != time.Minute {
		t.Errorf("ReadTimeout = %v, want 1m", cfg.ReadTimeoutDuration())
	}
}

func TestServerConfigEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServerHost, "127.0.0.1")
	t.Setenv(config.EnvServerPort, "9090")

	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr = %q, want 127.0.0.1:9090", cfg.Addr())
	}
}

func TestServerConfigValidation(t *testing.T) {
	cfg := config.ServerConfig{Port: 70000}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for invalid port")
	}

	cfg = config.ServerConfig{ReadTimeout: "not-a-duration"}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for invalid read_timeout")
	}
}

func TestServerConfigMerge(t *testing.T) {
	base := config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: "1m"}
	overlay := config.ServerConfig{Port: 9090}
	base.Merge(&overlay)

	if base.Port != 9090 {
		t.Errorf("Port = %d, want 9090", base.Port)
	}
	if base.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want unchanged", base.Host)
	}
}

func TestAPIConfigDefaults(t *testing.T) {
	cfg := config.APIConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("BasePath = %q, want /api", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 50MB", cfg.MaxUploadSizeBytes())
	}
	if cfg.Pagination.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Auth.Enabled {
		t.Error("auth should be disabled by default")
	}
}

func TestAPIConfigMerge(t *testing.T) {
	base := config.APIConfig{BasePath: "/api", MaxUploadSize: "50MB"}
	overlay := config.APIConfig{MaxUploadSize: "10MB"}
	base.Merge(&overlay)

	if base.MaxUploadSize != "10MB" {
		t.Errorf("MaxUploadSize = %q, want 10MB", base.MaxUploadSize)
	}
	if base.BasePath != "/api" {
		t.Errorf("BasePath = %q, want unchanged", base.BasePath)
	}
}
