package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"item-store-api/internal/model"
)

// minThroughput is the smallest manual RU/s a Cosmos DB container accepts.
const minThroughput = 400

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Document store
	Cosmos CosmosConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimitPerMin int
	AllowedOrigins  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CosmosConfig struct {
	Endpoint           string
	Key                string
	Database           string
	Container          string
	PartitionKeyPath   string
	Throughput         int32
	InsecureSkipVerify bool
	CreateIfNotExists  bool
}

// Load loads configuration using Viper.
// A .env file, when present, is loaded into the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Every key can be overridden by its upper-cased env var with "." replaced by "_",
// e.g. cosmos.endpoint → COSMOS_ENDPOINT.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = v.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = v.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.AllowedOrigins = splitList(v.GetString("http_server.allowed_origins"))

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Document store
	cfg.Cosmos.Endpoint = v.GetString("cosmos.endpoint")
	cfg.Cosmos.Key = v.GetString("cosmos.key")
	cfg.Cosmos.Database = v.GetString("cosmos.database")
	cfg.Cosmos.Container = v.GetString("cosmos.container")
	cfg.Cosmos.PartitionKeyPath = v.GetString("cosmos.partition_key_path")
	cfg.Cosmos.Throughput = v.GetInt32("cosmos.throughput")
	cfg.Cosmos.InsecureSkipVerify = v.GetBool("cosmos.insecure_skip_verify")
	cfg.Cosmos.CreateIfNotExists = v.GetBool("cosmos.create_if_not_exists")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if !model.Environment(c.Environment.Name).IsValid() {
		errs = append(errs, fmt.Errorf("environment.name %q is not one of development, staging, production", c.Environment.Name))
	}
	if c.HTTPServer.Port <= 0 {
		errs = append(errs, errors.New("http_server.port must be positive"))
	}
	if c.Cosmos.Endpoint == "" {
		errs = append(errs, errors.New("cosmos.endpoint is required"))
	}
	if c.Cosmos.Key == "" {
		errs = append(errs, errors.New("cosmos.key is required"))
	}
	if c.Cosmos.Database == "" {
		errs = append(errs, errors.New("cosmos.database is required"))
	}
	if c.Cosmos.Container == "" {
		errs = append(errs, errors.New("cosmos.container is required"))
	}
	if !strings.HasPrefix(c.Cosmos.PartitionKeyPath, "/") {
		errs = append(errs, errors.New("cosmos.partition_key_path must start with /"))
	}
	if c.Cosmos.Throughput < minThroughput {
		errs = append(errs, fmt.Errorf("cosmos.throughput must be at least %d", minThroughput))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.read_timeout", "10s")
	v.SetDefault("http_server.write_timeout", "30s")
	v.SetDefault("http_server.shutdown_timeout", "15s")
	v.SetDefault("http_server.rate_limit_per_min", 600)
	v.SetDefault("http_server.allowed_origins", "")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Local emulator defaults
	v.SetDefault("cosmos.endpoint", "https://localhost:8081")
	v.SetDefault("cosmos.key", "")
	v.SetDefault("cosmos.database", "AdvancedDB")
	v.SetDefault("cosmos.container", "Items")
	v.SetDefault("cosmos.partition_key_path", "/category")
	v.SetDefault("cosmos.throughput", minThroughput)
	v.SetDefault("cosmos.insecure_skip_verify", false)
	v.SetDefault("cosmos.create_if_not_exists", true)
}

// splitList splits a comma separated value, since env vars cannot carry yaml lists.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
