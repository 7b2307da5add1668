package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Driver names for the mock/cloud switch. Memory, local and log are
// the development drivers; postgres, s3 and kafka the production ones.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	ReceiptsLocal   = "local"
	ReceiptsS3      = "s3"
	NotifierLog     = "log"
	NotifierKafka   = "kafka"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	S3       S3Config       `yaml:"s3"`
	Auth     AuthConfig     `yaml:"auth"`
	Drivers  DriversConfig  `yaml:"drivers"`
	Booking  BookingConfig  `yaml:"booking"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type S3Config struct {
	Region string `yaml:"region"`
	Bucket string `yaml:"bucket"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	// BootstrapAdminEmail promotes the matching registration to admin.
	// With the memory driver the first registered user is admin.
	BootstrapAdminEmail string `yaml:"bootstrap_admin_email"`
}

type DriversConfig struct {
	Storage  string `yaml:"storage"`
	Receipts string `yaml:"receipts"`
	Notifier string `yaml:"notifier"`
}

type BookingConfig struct {
	DraftTTLMinutes       int    `yaml:"draft_ttl_minutes"`
	CatalogCacheTTL       int    `yaml:"catalog_cache_ttl_seconds"`
	SideEffectTimeoutSecs int    `yaml:"side_effect_timeout_seconds"`
	ReceiptsDir           string `yaml:"receipts_dir"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Drivers.Storage == "" {
		c.Drivers.Storage = StorageMemory
	}
	if c.Drivers.Receipts == "" {
		c.Drivers.Receipts = ReceiptsLocal
	}
	if c.Drivers.Notifier == "" {
		c.Drivers.Notifier = NotifierLog
	}
	if c.Booking.DraftTTLMinutes == 0 {
		c.Booking.DraftTTLMinutes = 30
	}
	if c.Booking.SideEffectTimeoutSecs == 0 {
		c.Booking.SideEffectTimeoutSecs = 5
	}
	if c.Booking.ReceiptsDir == "" {
		c.Booking.ReceiptsDir = "static/uploads"
	}
}
