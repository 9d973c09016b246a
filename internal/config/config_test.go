package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  addr: ":9090"
cache:
  ttl_seconds: 60
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("POPULAR_TICKERS", "nvda, amd")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr from file: got %q", cfg.Server.Addr)
	}
	if cfg.Cache.TTLSeconds != 60 {
		t.Errorf("ttl from file: got %d", cfg.Cache.TTLSeconds)
	}
	if cfg.Database.SQLitePath != "/tmp/test.db" {
		t.Errorf("sqlite path from env: got %q", cfg.Database.SQLitePath)
	}
	if len(cfg.Cache.PopularTickers) != 2 || cfg.Cache.PopularTickers[0] != "NVDA" {
		t.Errorf("tickers from env: got %v", cfg.Cache.PopularTickers)
	}

	// Untouched fields get defaults.
	if cfg.DefaultPeriod != "1y" {
		t.Errorf("default period: got %q", cfg.DefaultPeriod)
	}
	if cfg.Returns.MonthlyWindow != 21 || cfg.Returns.YearlyWindow != 252 {
		t.Errorf("return windows: got %d/%d", cfg.Returns.MonthlyWindow, cfg.Returns.YearlyWindow)
	}
	if cfg.Returns.MonthlyFallbackMin != 10 || cfg.Returns.YearlyFallbackMin != 100 {
		t.Errorf("fallback cutoffs: got %d/%d", cfg.Returns.MonthlyFallbackMin, cfg.Returns.YearlyFallbackMin)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Cache.TTLSeconds != 300 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.DefaultPeriod = "fortnight"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bogus period")
	}
}
