package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration, loaded from the environment.
type Config struct {
	Server   Server
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	CRM      CRMConfig
	LogLevel string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
}

// DatabaseConfig points at the venue platform database holding the source tables.
type DatabaseConfig struct {
	URL            string
	MaxOpenConns   int
	MigrateOnStart bool
}

// RedisConfig configures the snapshot cache connection. An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures data-quality event publication. No brokers means log-only.
type KafkaConfig struct {
	Brokers          []string
	DataQualityTopic string
}

// CRMConfig tunes the segmentation pipeline.
type CRMConfig struct {
	// FlatVisitEstimate is the per-visit spend assumed for ticketing and
	// reservation visits with no calibration for the visit date.
	FlatVisitEstimate decimal.Decimal
	// SnapshotTTL of zero disables the snapshot cache.
	SnapshotTTL     time.Duration
	FetchTimeout    time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

const devSigningKey = "dev-secret-key-change-in-production"

func defaults(v *viper.Viper) {
	v.SetDefault("BARHUB_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("MIGRATE_ON_START", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_DIAL_TIMEOUT", 5*time.Second)
	v.SetDefault("REDIS_READ_TIMEOUT", 3*time.Second)
	v.SetDefault("REDIS_WRITE_TIMEOUT", 3*time.Second)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("CRM_DATA_QUALITY_TOPIC", "barhub.crm.data-quality")
	v.SetDefault("JWT_SIGNING_KEY", devSigningKey)
	v.SetDefault("CRM_FLAT_VISIT_ESTIMATE", "100")
	v.SetDefault("CRM_SNAPSHOT_TTL", 2*time.Minute)
	v.SetDefault("CRM_FETCH_TIMEOUT", 10*time.Second)
	v.SetDefault("CRM_DEFAULT_PAGE_SIZE", 20)
	v.SetDefault("CRM_MAX_PAGE_SIZE", 100)
	v.SetDefault("LOG_LEVEL", "info")
}

// Load builds a Config from environment variables so main stays lean.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	estimate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("CRM_FLAT_VISIT_ESTIMATE")))
	if err != nil {
		return nil, fmt.Errorf("parse CRM_FLAT_VISIT_ESTIMATE: %w", err)
	}

	cfg := &Config{
		Server: Server{
			Addr:          v.GetString("BARHUB_ADDR"),
			JWTSigningKey: v.GetString("JWT_SIGNING_KEY"),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("DATABASE_URL"),
			MaxOpenConns:   v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MigrateOnStart: v.GetBool("MIGRATE_ON_START"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("REDIS_URL"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
		},
		Kafka: KafkaConfig{
			Brokers:          splitList(v.GetString("KAFKA_BROKERS")),
			DataQualityTopic: v.GetString("CRM_DATA_QUALITY_TOPIC"),
		},
		CRM: CRMConfig{
			FlatVisitEstimate: estimate,
			SnapshotTTL:       v.GetDuration("CRM_SNAPSHOT_TTL"),
			FetchTimeout:      v.GetDuration("CRM_FETCH_TIMEOUT"),
			DefaultPageSize:   v.GetInt("CRM_DEFAULT_PAGE_SIZE"),
			MaxPageSize:       v.GetInt("CRM_MAX_PAGE_SIZE"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if !c.CRM.FlatVisitEstimate.IsPositive() {
		return fmt.Errorf("CRM_FLAT_VISIT_ESTIMATE must be positive, got %s", c.CRM.FlatVisitEstimate)
	}
	if c.CRM.FetchTimeout <= 0 {
		return fmt.Errorf("CRM_FETCH_TIMEOUT must be positive, got %s", c.CRM.FetchTimeout)
	}
	if c.CRM.SnapshotTTL < 0 {
		return fmt.Errorf("CRM_SNAPSHOT_TTL must not be negative, got %s", c.CRM.SnapshotTTL)
	}
	if c.CRM.MaxPageSize < 1 {
		return fmt.Errorf("CRM_MAX_PAGE_SIZE must be at least 1, got %d", c.CRM.MaxPageSize)
	}
	if c.CRM.DefaultPageSize < 1 || c.CRM.DefaultPageSize > c.CRM.MaxPageSize {
		return fmt.Errorf("CRM_DEFAULT_PAGE_SIZE must be between 1 and %d, got %d", c.CRM.MaxPageSize, c.CRM.DefaultPageSize)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.DataQualityTopic == "" {
		return fmt.Errorf("CRM_DATA_QUALITY_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// UsesDevSigningKey reports whether JWT_SIGNING_KEY was left at its development default.
func (c *Config) UsesDevSigningKey() bool {
	return c.Server.JWTSigningKey == devSigningKey
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
