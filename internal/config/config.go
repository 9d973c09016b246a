package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		Mock    bool   `yaml:"mock"`
	} `yaml:"data_source"`
	Cache struct {
		TTLSeconds     int      `yaml:"ttl_seconds"`
		WarmCron       string   `yaml:"warm_cron"`
		PopularTickers []string `yaml:"popular_tickers"`
	} `yaml:"cache"`
	Returns struct {
		MonthlyWindow      int `yaml:"monthly_window"`
		YearlyWindow       int `yaml:"yearly_window"`
		MonthlyFallbackMin int `yaml:"monthly_fallback_min"`
		YearlyFallbackMin  int `yaml:"yearly_fallback_min"`
	} `yaml:"returns"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	DefaultPeriod string `yaml:"default_period"`
	Proxy         string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("USE_MOCK_DATA"); v == "true" {
		cfg.DataSource.Mock = true
	}
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLSeconds = ttl
		}
	}
	if v := os.Getenv("POPULAR_TICKERS"); v != "" {
		cfg.Cache.PopularTickers = splitTickers(v)
	}
	if v := os.Getenv("WARM_CRON"); v != "" {
		cfg.Cache.WarmCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Cache.WarmCron == "" {
		cfg.Cache.WarmCron = "0 */5 * * * *"
	}
	if len(cfg.Cache.PopularTickers) == 0 {
		cfg.Cache.PopularTickers = []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA",
			"META", "NVDA", "JPM", "V", "WMT",
		}
	}
	if cfg.Returns.MonthlyWindow == 0 {
		cfg.Returns.MonthlyWindow = calculator.MonthlyWindow
	}
	if cfg.Returns.YearlyWindow == 0 {
		cfg.Returns.YearlyWindow = calculator.YearlyWindow
	}
	if cfg.Returns.MonthlyFallbackMin == 0 {
		cfg.Returns.MonthlyFallbackMin = calculator.MonthlyFallbackMin
	}
	if cfg.Returns.YearlyFallbackMin == 0 {
		cfg.Returns.YearlyFallbackMin = calculator.YearlyFallbackMin
	}
	if cfg.DefaultPeriod == "" {
		cfg.DefaultPeriod = string(model.DefaultPeriod)
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive")
	}
	if _, ok := model.ParsePeriod(c.DefaultPeriod); !ok {
		return fmt.Errorf("default_period %q is not a valid lookback token", c.DefaultPeriod)
	}
	if c.Returns.MonthlyWindow <= 0 || c.Returns.YearlyWindow <= 0 {
		return fmt.Errorf("returns windows must be positive")
	}
	if c.Returns.MonthlyFallbackMin <= 0 || c.Returns.YearlyFallbackMin <= 0 {
		return fmt.Errorf("returns fallback minimums must be positive")
	}
	return nil
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

func splitTickers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, strings.ToUpper(t))
		}
	}
	return out
}
