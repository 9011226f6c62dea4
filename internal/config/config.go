package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultWatchlist is the fixed scan list used when none is configured.
var DefaultWatchlist = []string{
	"AAPL", "GOOG", "MSFT", "AMZN", "META", "TSLA", "NVDA", "JPM", "NFLX", "BRK-B",
}

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider        string `yaml:"provider"` // "alphavantage", "yahoo" or "mock"
		BaseURL         string `yaml:"base_url"`
		APIKey          string `yaml:"api_key"`
		Symbol          string `yaml:"symbol"` // loaded on start
		CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	} `yaml:"data_source"`
	Scan struct {
		Watchlist    []string `yaml:"watchlist"`
		Cron         string   `yaml:"cron"`
		DelaySeconds int      `yaml:"delay_seconds"`
	} `yaml:"scan"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides (a .env file is honored via godotenv), then defaults.
func Load(path string) (*Config, error) {
	godotenv.Load()

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
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Scan.Watchlist = strings.Split(v, ",")
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("SCAN_DELAY_SECONDS"); v != "" {
		var delay int
		if _, err := fmt.Sscanf(v, "%d", &delay); err == nil {
			cfg.Scan.DelaySeconds = delay
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "alphavantage"
	}
	// Each fetcher owns its public default; only Alpha Vantage needs one here.
	if cfg.DataSource.BaseURL == "" && cfg.DataSource.Provider == "alphavantage" {
		cfg.DataSource.BaseURL = "https://www.alphavantage.co"
	}
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "AAPL"
	}
	if cfg.DataSource.CacheTTLMinutes == 0 {
		cfg.DataSource.CacheTTLMinutes = 30
	}
	if len(cfg.Scan.Watchlist) == 0 {
		cfg.Scan.Watchlist = DefaultWatchlist
	}
	if cfg.Scan.Cron == "" {
		cfg.Scan.Cron = "0 30 * * * 1-5" // half past every hour, trading weekdays
	}
	if cfg.Scan.DelaySeconds == 0 {
		cfg.Scan.DelaySeconds = 15
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "alphavantage":
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for the alphavantage provider")
		}
	case "yahoo", "mock":
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if c.Scan.DelaySeconds < 0 {
		return fmt.Errorf("scan.delay_seconds must not be negative")
	}
	if len(c.Scan.Watchlist) == 0 {
		return fmt.Errorf("scan.watchlist must not be empty")
	}
	return nil
}
