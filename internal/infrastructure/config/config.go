package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full service configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	ML     MLConfig     `mapstructure:"ml"`
	Jobs   JobsConfig   `mapstructure:"jobs"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// MLConfig holds model inference service settings
type MLConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// JobsConfig holds batch job engine settings
type JobsConfig struct {
	MaxBatchSize  int           `mapstructure:"max_batch_size"`
	Retention     time.Duration `mapstructure:"retention"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Workers       int           `mapstructure:"workers"`
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig holds classification result cache settings
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults and CLASSIFY_-prefixed environment
// variables (e.g. CLASSIFY_SERVER_PORT, CLASSIFY_ML_URL)
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CLASSIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	// Model inference service defaults
	v.SetDefault("ml.url", "http://localhost:8000")
	v.SetDefault("ml.timeout", "30s")

	// Job engine defaults; retention and sweep interval mirror the classic
	// one-hour TTL with a five-minute cleanup cadence
	v.SetDefault("jobs.max_batch_size", 100)
	v.SetDefault("jobs.retention", "1h")
	v.SetDefault("jobs.sweep_interval", "5m")
	v.SetDefault("jobs.workers", 1)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Cache defaults
	v.SetDefault("cache.ttl", "10m")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
