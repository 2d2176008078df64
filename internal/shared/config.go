package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

//go:embed config.example.toml
var exampleConf []byte

// Storage backends accepted by [StorageConfig.Backend].
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Redis    RedisConfig    `toml:"redis"`
	Session  SessionConfig  `toml:"session"`
	Checkout CheckoutConfig `toml:"checkout"`
	Export   ExportConfig   `toml:"export"`
	Log      LogConfig      `toml:"log"`
}

// StorageConfig selects and tunes the slot backend.
type StorageConfig struct {
	Backend      string `toml:"backend"`
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// RedisConfig contains connection settings for the redis slot backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// SessionConfig contains the mock authentication settings.
type SessionConfig struct {
	LoginDelayMS int    `toml:"login_delay_ms"`
	DemoEmail    string `toml:"demo_email"`
	DemoPassword string `toml:"demo_password"`
	DemoName     string `toml:"demo_name"`
}

// CheckoutConfig contains pricing and mock payment settings.
type CheckoutConfig struct {
	TaxRate           float64 `toml:"tax_rate"`
	ProcessingDelayMS int     `toml:"processing_delay_ms"`
}

// ExportConfig tunes poster downloads for library exports.
type ExportConfig struct {
	PosterWorkers int     `toml:"poster_workers"`
	PosterRate    float64 `toml:"poster_rate"`
}

// LogConfig controls the default logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoginDelay returns the simulated authentication latency.
func (c SessionConfig) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// ProcessingDelay returns the simulated payment latency.
func (c CheckoutConfig) ProcessingDelay() time.Duration {
	return time.Duration(c.ProcessingDelayMS) * time.Millisecond
}

// Tax returns the tax rate as a [decimal.Decimal].
func (c CheckoutConfig) Tax() decimal.Decimal {
	return decimal.NewFromFloat(c.TaxRate)
}

// Validate reports configuration values the application cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: storage.path is required for the sqlite backend", ErrInvalidConfig)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for the redis backend", ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Checkout.TaxRate < 0 {
		return fmt.Errorf("%w: checkout.tax_rate must not be negative", ErrInvalidConfig)
	}
	if c.Export.PosterWorkers < 0 || c.Export.PosterRate < 0 {
		return fmt.Errorf("%w: export settings must not be negative", ErrInvalidConfig)
	}
	if c.Session.LoginDelayMS < 0 || c.Checkout.ProcessingDelayMS < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}

	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
