package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
env: dev
bench:
  messages: 1000
  symbols: [AAPL, MSFT]
  mode: ring
ring:
  capacity: 256
sampler:
  capacity: 10000
metrics:
  addr: ":9100"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "dev" || cfg.Bench.Messages != 1000 || cfg.Ring.Capacity != 256 {
		t.Fatalf("unexpected cfg values: %+v", cfg)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Fatalf("metrics addr = %q", cfg.Metrics.Addr)
	}
	// defaults survive for fields the file omits
	if cfg.Logging.Level != "info" {
		t.Fatalf("logging level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
bench:
  messages: 1000
  symbols: [AAPL]
  mode: loopback
ring:
  capacity: 64
sampler:
  capacity: 100
`)
	t.Setenv("OW_METRICS_ADDR", ":9999")
	t.Setenv("OW_LOG_LEVEL", "debug")
	t.Setenv("OW_BENCH_MESSAGES", "42")

	cfg, err := LoadWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Metrics.Addr != ":9999" || cfg.Logging.Level != "debug" || cfg.Bench.Messages != 42 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"default ok", func(c *AppConfig) {}, false},
		{"zero messages", func(c *AppConfig) { c.Bench.Messages = 0 }, true},
		{"bad mode", func(c *AppConfig) { c.Bench.Mode = "tcp" }, true},
		{"no symbols", func(c *AppConfig) { c.Bench.Symbols = nil }, true},
		{"symbol too long", func(c *AppConfig) { c.Bench.Symbols = []string{"TOOLONGSYM"} }, true},
		{"symbol not alnum", func(c *AppConfig) { c.Bench.Symbols = []string{"BTC-USD"} }, true},
		{"ring capacity 3", func(c *AppConfig) { c.Ring.Capacity = 3 }, true},
		{"ring capacity 1", func(c *AppConfig) { c.Ring.Capacity = 1 }, true},
		{"ring capacity 4", func(c *AppConfig) { c.Ring.Capacity = 4 }, false},
		{"sampler capacity 0", func(c *AppConfig) { c.Sampler.Capacity = 0 }, true},
		{"loop without interval", func(c *AppConfig) { c.Bench.Loop = true; c.Bench.ReportIntervalMs = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
