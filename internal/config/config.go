package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Signals struct {
		// Source is "file" or "http".
		Source   string `yaml:"source"`
		Path     string `yaml:"path"`
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		FarmerID string `yaml:"farmer_id"`
	} `yaml:"signals"`
	Schedule struct {
		AdvisoryCron string `yaml:"advisory_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Policy struct {
		ExtraMSPCrops     []string `yaml:"extra_msp_crops"`
		SmallholdingAcres float64  `yaml:"smallholding_acres"`
		DefaultCrop       string   `yaml:"default_crop"`
	} `yaml:"policy"`
	Proxy string `yaml:"proxy"`
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SIGNALS_SOURCE"); v != "" {
		cfg.Signals.Source = v
	}
	if v := os.Getenv("SIGNALS_PATH"); v != "" {
		cfg.Signals.Path = v
	}
	if v := os.Getenv("SIGNALS_BASE_URL"); v != "" {
		cfg.Signals.BaseURL = v
	}
	if v := os.Getenv("SIGNALS_API_KEY"); v != "" {
		cfg.Signals.APIKey = v
	}
	if v := os.Getenv("FARMER_ID"); v != "" {
		cfg.Signals.FarmerID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_ADVISORY"); v != "" {
		cfg.Schedule.AdvisoryCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Signals.Source == "" {
		if cfg.Signals.BaseURL != "" {
			cfg.Signals.Source = "http"
		} else {
			cfg.Signals.Source = "file"
		}
	}
	if cfg.Signals.Path == "" {
		cfg.Signals.Path = "data/signals.json"
	}
	if cfg.Schedule.AdvisoryCron == "" {
		cfg.Schedule.AdvisoryCron = "0 0 7 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/farmshield.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	switch c.Signals.Source {
	case "file":
		if c.Signals.Path == "" {
			return fmt.Errorf("signals.path is required for the file source")
		}
	case "http":
		if c.Signals.BaseURL == "" {
			return fmt.Errorf("signals.base_url is required for the http source")
		}
	default:
		return fmt.Errorf("signals.source must be \"file\" or \"http\", got %q", c.Signals.Source)
	}
	return nil
}
