package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	xutil "StockHunter/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Screener struct {
		BaseURL            string        `yaml:"base_url"`
		ScreenTimeout      time.Duration `yaml:"screen_timeout"`
		CredentialsTimeout time.Duration `yaml:"credentials_timeout"`
		CodesTimeout       time.Duration `yaml:"codes_timeout"`
		HealthTimeout      time.Duration `yaml:"health_timeout"`
	} `yaml:"screener"`
	Web struct {
		HTMLPaths []string `yaml:"html_paths"`
	} `yaml:"web"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("KOTLIN_SERVICE_URL"); v != "" {
		c.Screener.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = xutil.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return c, nil
}

// applyDefaults fills in values that may be omitted from the YAML file.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	// Write timeout covers handler time, so it must outlast the screen budget.
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 330 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Screener.ScreenTimeout == 0 {
		c.Screener.ScreenTimeout = 5 * time.Minute
	}
	if c.Screener.CredentialsTimeout == 0 {
		c.Screener.CredentialsTimeout = 10 * time.Second
	}
	if c.Screener.CodesTimeout == 0 {
		c.Screener.CodesTimeout = 5 * time.Second
	}
	if c.Screener.HealthTimeout == 0 {
		c.Screener.HealthTimeout = 5 * time.Second
	}
	if len(c.Web.HTMLPaths) == 0 {
		c.Web.HTMLPaths = []string{"web/stock_screener.html", "stock_screener.html"}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Screener.BaseURL == "" {
		return fmt.Errorf("screener.base_url is required")
	}
	if !strings.HasPrefix(c.Screener.BaseURL, "http://") && !strings.HasPrefix(c.Screener.BaseURL, "https://") {
		return fmt.Errorf("screener.base_url must be an http(s) URL, got '%s'", c.Screener.BaseURL)
	}
	if c.Screener.ScreenTimeout <= c.Screener.HealthTimeout {
		return fmt.Errorf("screener.screen_timeout must exceed screener.health_timeout")
	}
	return nil
}
