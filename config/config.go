package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the tubedigest service
type Config struct {
	Database DatabaseConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	Service  ServiceConfig
	YouTube  YouTubeConfig
	Catalog  CatalogConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers               []string
	GroupID               string
	Enabled               bool
	TopicSummaryGenerated string
}

// RedisConfig holds the optional read cache configuration.
// An empty URL disables caching.
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name     string
	Port     string
	GRPCPort string
}

// YouTubeConfig holds settings of the channel metadata fetcher
type YouTubeConfig struct {
	FetchTimeout time.Duration
	UserAgent    string
}

// Category is one selectable content category of the onboarding flow
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// CatalogConfig lists the categories a user may pick from
type CatalogConfig struct {
	Categories []Category
}

// IDs returns the category identifiers in catalogue order
func (c *CatalogConfig) IDs() []string {
	ids := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		ids = append(ids, cat.ID)
	}
	return ids
}

// NormalizeCategoryID folds an id to the form submitted selections are
// compared in
func NormalizeCategoryID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// DefaultCategories is used when no config file overrides the catalogue
var DefaultCategories = []Category{
	{ID: "tech", Label: "Technology"},
	{ID: "business", Label: "Business"},
	{ID: "education", Label: "Education"},
	{ID: "productivity", Label: "Productivity"},
	{ID: "science", Label: "Science"},
	{ID: "diy", Label: "DIY & Tutorials"},
}

type Result struct {
	fx.Out

	Config         *Config
	DatabaseConfig *DatabaseConfig
	KafkaConfig    *KafkaConfig
	RedisConfig    *RedisConfig
	LoggingConfig  *LoggingConfig
	ServiceConfig  *ServiceConfig
	YouTubeConfig  *YouTubeConfig
	CatalogConfig  *CatalogConfig
}

func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:         cfg,
		DatabaseConfig: &cfg.Database,
		KafkaConfig:    &cfg.Kafka,
		RedisConfig:    &cfg.Redis,
		LoggingConfig:  &cfg.Logging,
		ServiceConfig:  &cfg.Service,
		YouTubeConfig:  &cfg.YouTube,
		CatalogConfig:  &cfg.Catalog,
	}, nil
}

// Load loads configuration from environment variables and an optional YAML file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:           getEnv("DATABASE_HOST", "localhost"),
			Port:           getEnv("DATABASE_PORT", "5432"),
			User:           getEnv("DATABASE_USER", "tubedigest_user"),
			Password:       getEnv("DATABASE_PASSWORD", "tubedigest_pass"),
			DBName:         getEnv("DATABASE_NAME", "tubedigest_db"),
			SSLMode:        getEnv("DATABASE_SSLMODE", "disable"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		},
		Kafka: KafkaConfig{
			Brokers:               splitList(getEnv("KAFKA_BROKERS", "localhost:9093")),
			GroupID:               getEnv("KAFKA_GROUP_ID", "tubedigest-group"),
			Enabled:               getEnvBool("KAFKA_ENABLED", true),
			TopicSummaryGenerated: getEnv("KAFKA_TOPIC_SUMMARY_GENERATED", "summary.generated"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
			TTL: getEnvDuration("REDIS_TTL", 2*time.Minute),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name:     getEnv("SERVICE_NAME", "tubedigest"),
			Port:     getEnv("SERVICE_PORT", "8080"),
			GRPCPort: getEnv("GRPC_PORT", "50051"),
		},
		YouTube: YouTubeConfig{
			FetchTimeout: getEnvDuration("YOUTUBE_FETCH_TIMEOUT", 5*time.Second),
			UserAgent:    getEnv("YOUTUBE_USER_AGENT", "tubedigest/1.0"),
		},
		Catalog: CatalogConfig{
			Categories: append([]Category(nil), DefaultCategories...),
		},
	}

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := ApplyFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DATABASE_HOST is required")
	}

	if c.Database.User == "" {
		return fmt.Errorf("DATABASE_USER is required")
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	if c.YouTube.FetchTimeout <= 0 {
		return fmt.Errorf("YOUTUBE_FETCH_TIMEOUT must be positive")
	}

	if len(c.Catalog.Categories) == 0 {
		return fmt.Errorf("at least one content category must be configured")
	}

	seen := make(map[string]struct{}, len(c.Catalog.Categories))
	for _, cat := range c.Catalog.Categories {
		if cat.ID == "" {
			return fmt.Errorf("content category id is required")
		}
		if cat.ID != NormalizeCategoryID(cat.ID) {
			return fmt.Errorf("content category id %q must be lower case without surrounding spaces", cat.ID)
		}
		if _, ok := seen[cat.ID]; ok {
			return fmt.Errorf("duplicate content category %q", cat.ID)
		}
		seen[cat.ID] = struct{}{}
	}

	return nil
}

// GetDSN returns database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
