package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Dispatch modes. Live schedules real delivery jobs; diagnostic echoes
// envelopes to the log without any network call.
const (
	ModeLive       = "live"
	ModeDiagnostic = "diagnostic"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
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

// WebhookConfig controls the dispatch and delivery core.
type WebhookConfig struct {
	Mode string `mapstructure:"mode"` // live, diagnostic

	// Subscriber resolution cache. When disabled every dispatch hits the
	// store directly; a newly (de)activated webhook may take up to CacheTTL
	// to be reflected in targeting when enabled.
	UseCache bool          `mapstructure:"use_cache"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// Outbound delivery.
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
	LookupTimeout   time.Duration `mapstructure:"lookup_timeout"` // subscriber store lookup, hot path
	SignatureHeader string        `mapstructure:"signature_header"`
	QueueWorkers    int           `mapstructure:"queue_workers"`

	// Secrets and retention.
	DefaultSecretLength int           `mapstructure:"default_secret_length"`
	RetentionDays       int           `mapstructure:"retention_days"`
	CleanupInterval     time.Duration `mapstructure:"cleanup_interval"`
}

type AdminConfig struct {
	Token string `mapstructure:"token"` // bearer token for the admin API; empty disables auth
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WHG_ (Webhook Gateway).
// Nested keys use underscore: WHG_DATABASE_HOST, WHG_WEBHOOK_MODE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "webhook_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("webhook.mode", ModeDiagnostic)
	v.SetDefault("webhook.use_cache", true)
	v.SetDefault("webhook.cache_ttl", "60s")
	v.SetDefault("webhook.delivery_timeout", "10s")
	v.SetDefault("webhook.lookup_timeout", "2s")
	v.SetDefault("webhook.signature_header", "X-Webhook-Signature")
	v.SetDefault("webhook.queue_workers", 4)
	v.SetDefault("webhook.default_secret_length", 32)
	v.SetDefault("webhook.retention_days", 30)
	v.SetDefault("webhook.cleanup_interval", "1h")
	v.SetDefault("admin.token", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WHG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WHG")
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

	if cfg.Webhook.Mode != ModeLive && cfg.Webhook.Mode != ModeDiagnostic {
		return nil, fmt.Errorf("webhook.mode must be %q or %q, got %q", ModeLive, ModeDiagnostic, cfg.Webhook.Mode)
	}

	return &cfg, nil
}
