package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Cache      CacheConfig
	Pricing    PricingConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type CacheConfig struct {
	// Enabled toggles the quote fingerprint cache; correctness of the
	// pricing pipeline never depends on it
	Enabled bool

	// TTL is the lifetime of a cached quote
	TTL time.Duration
}

type PricingConfig struct {
	// DefaultGarmentCost is the per-unit cost used when the garment
	// is unknown to the cost lookup
	DefaultGarmentCost float64

	// DefaultMargin is the profit margin fraction applied when no rule
	// overrides it, ex 0.35 for 35%
	DefaultMargin float64
}

func NewConfig() (*Configuration, error) {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/printshop")

	v.SetEnvPrefix("PRINTSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "300s")
	v.SetDefault("pricing.defaultgarmentcost", 4.50)
	v.SetDefault("pricing.defaultmargin", 0.35)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests. Values mirror the viper defaults.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     300 * time.Second,
		},
		Pricing: PricingConfig{
			DefaultGarmentCost: 4.50,
			DefaultMargin:      0.35,
		},
	}
}
