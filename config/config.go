package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig  `mapstructure:"server"`
	Redis       RedisConfig   `mapstructure:"redis"`
	Rates       RatesConfig   `mapstructure:"rates"`
	JWT         JWTConfig     `mapstructure:"jwt"`
	Storage     StorageConfig `mapstructure:"storage"`
	Log         LogConfig     `mapstructure:"log"`
	Environment string        `mapstructure:"environment"` // LOCAL or deployed
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RatesConfig configures the exchange rate source and its cache.
type RatesConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// ConversionEndpoint is a template with a %s slot for the
	// lowercased currency code.
	ConversionEndpoint string        `mapstructure:"conversion_endpoint"`
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
	CacheSize          int           `mapstructure:"cache_size"`
}

type JWTConfig struct {
	// SecretName is the secret-provider key holding the signing key,
	// not the key itself.
	SecretName string        `mapstructure:"secret_name"`
	Expiry     time.Duration `mapstructure:"expiry"`
	Issuer     string        `mapstructure:"issuer"`
}

// StorageConfig names the key prefixes for wallet and user records.
type StorageConfig struct {
	WalletPrefix string `mapstructure:"wallet_prefix"`
	UserPrefix   string `mapstructure:"user_prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// IsLocal reports whether the service runs against local collaborators
// (static secrets instead of an external secret manager).
func (c *Config) IsLocal() bool {
	return strings.EqualFold(c.Environment, "LOCAL")
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WALLET_.
// Nested keys use underscore: WALLET_REDIS_HOST, WALLET_RATES_CACHE_TTL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rates.base_url", "https://api.nbp.pl/api")
	v.SetDefault("rates.conversion_endpoint", "exchangerates/rates/c/%s?format=json")
	v.SetDefault("rates.cache_ttl", "60s")
	v.SetDefault("rates.cache_size", 10)
	v.SetDefault("jwt.secret_name", "JWT_SECRET_KEY")
	v.SetDefault("jwt.expiry", "30m")
	v.SetDefault("jwt.issuer", "currency-wallet")
	v.SetDefault("storage.wallet_prefix", "wallet:")
	v.SetDefault("storage.user_prefix", "user:")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("environment", "LOCAL")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WALLET_REDIS_HOST -> redis.host
	v.SetEnvPrefix("WALLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
