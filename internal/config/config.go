package config

import (
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

type Configuration struct {
	Server    Server
	Store     Store
	Warehouse Warehouse
	Cache     Cache
	LogLevel  string `default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `default:"console" validate:"oneof=console json"`
}

type Server struct {
	HTTPPort      int    `default:"8000"`
	ServerMode    string `default:"dev"`
	StaticsFolder string
	MaxUploadSize int64 `default:"67108864" validate:"gt=0"`
	PreviewRows   int   `default:"5" validate:"gte=0"`
}

type Store struct {
	// DBPath is the DuckDB file holding workspaces. Empty keeps them in memory.
	DBPath string
}

type Warehouse struct {
	Driver     string `default:"duckdb" validate:"oneof=duckdb mysql sqlite"`
	DSN        string
	NumWorkers int `default:"3"`
	MaxRows    int `default:"100000" validate:"gte=0"`
}

type Cache struct {
	TTL time.Duration `default:"30m"`
}

type ConfigurationOption func(c *Configuration)

func WithServerMode(mode string) ConfigurationOption {
	return func(c *Configuration) {
		c.Server.ServerMode = mode
	}
}

func WithHTTPPort(port int) ConfigurationOption {
	return func(c *Configuration) {
		c.Server.HTTPPort = port
	}
}

func WithWarehouse(driver, dsn string) ConfigurationOption {
	return func(c *Configuration) {
		c.Warehouse.Driver = driver
		c.Warehouse.DSN = dsn
	}
}

func WithLogLevel(level string) ConfigurationOption {
	return func(c *Configuration) {
		c.LogLevel = level
	}
}

// NewConfigurationWithOptionsAndDefaults returns a configuration filled from
// the default struct tags, then modified by opts.
func NewConfigurationWithOptionsAndDefaults(opts ...ConfigurationOption) *Configuration {
	c := &Configuration{}
	if err := defaults.Set(c); err != nil {
		panic(err)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks the struct tag constraints.
func (c *Configuration) Validate() error {
	return validator.New().Struct(c)
}
