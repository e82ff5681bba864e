package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Collector configuration
	Collector CollectorConfig `mapstructure:"collector"`

	// PageSpeed API configuration
	PageSpeed PageSpeedConfig `mapstructure:"pagespeed"`

	// Storage configuration
	Storage StorageConfig `mapstructure:"storage"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// CollectorConfig holds page-collector configuration
type CollectorConfig struct {
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
}

// PageSpeedConfig holds PageSpeed Insights API configuration
type PageSpeedConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/.siteaudit")
	}

	setDefaults()
	bindEnvVars()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found is not an error, we'll use defaults and env
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "90s")

	// Collector defaults
	viper.SetDefault("collector.user_agent", "SiteAudit/1.0")
	viper.SetDefault("collector.timeout", "30s")
	viper.SetDefault("collector.requests_per_second", 4)

	// PageSpeed defaults
	viper.SetDefault("pagespeed.endpoint", "")
	viper.SetDefault("pagespeed.timeout", "60s")

	// Storage defaults
	viper.SetDefault("storage.path", "./siteaudit.db")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// bindEnvVars binds environment variables
func bindEnvVars() {
	viper.SetEnvPrefix("SITEAUDIT")
	viper.AutomaticEnv()

	viper.BindEnv("pagespeed.api_key", "PAGESPEED_API_KEY")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535")
	}
	if c.Collector.RequestsPerSecond <= 0 {
		return fmt.Errorf("collector.requests_per_second must be positive")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path must be set")
	}
	return nil
}
