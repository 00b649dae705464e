package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configPathEnv = "KONO_CONFIG"

// Catalog sources.
const (
	CatalogFile     = "file"
	CatalogR2       = "r2"
	CatalogPostgres = "postgres"
)

// Config holds everything the server needs at startup.
type Config struct {
	Env      string         `yaml:"env"`
	LogLevel string         `yaml:"logLevel"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	R2       R2Config       `yaml:"r2"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Menu     MenuConfig     `yaml:"menu"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int      `yaml:"port"`
	PublicDir   string   `yaml:"publicDir"`
	CORSOrigins []string `yaml:"corsOrigins"`
}

// DatabaseConfig is optional; without a DSN the in-memory stores are used.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// RedisConfig is optional; without an address selections stay in memory.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type R2Config struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"accessKey"`
	SecretKey     string `yaml:"secretKey"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"publicBaseUrl"`
}

// CatalogConfig says where the menu is read from.
type CatalogConfig struct {
	Source    string `yaml:"source"`
	Path      string `yaml:"path"`
	ObjectKey string `yaml:"objectKey"`
}

type MenuConfig struct {
	OrderConfirmDelay time.Duration `yaml:"orderConfirmDelay"`
	SessionTTL        time.Duration `yaml:"sessionTtl"`
	SweepInterval     time.Duration `yaml:"sweepInterval"`
}

// Load reads .env (outside production), the optional YAML file named by
// KONO_CONFIG, then environment overrides.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default is a runnable local setup: file catalog, everything in memory.
func Default() *Config {
	return &Config{
		Env:      "development",
		LogLevel: "info",
		Server: ServerConfig{
			Port:        3000,
			PublicDir:   "./web/public",
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Catalog: CatalogConfig{
			Source:    CatalogFile,
			Path:      "./data/menu.yaml",
			ObjectKey: "catalog/menu.yaml",
		},
		Menu: MenuConfig{
			OrderConfirmDelay: 2 * time.Second,
			SessionTTL:        30 * time.Minute,
			SweepInterval:     time.Minute,
		},
	}
}

func (c *Config) applyEnvOverrides() {
	c.Env = getEnv("APP_ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.Server.Port = getEnvAsInt("PORT", c.Server.Port)
	c.Server.PublicDir = getEnv("PUBLIC_DIR", c.Server.PublicDir)
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		c.Server.CORSOrigins = splitList(v)
	}

	c.Database.DSN = getEnv("DATABASE_URL", c.Database.DSN)

	c.Redis.Address = getEnv("REDIS_ADDRESS", c.Redis.Address)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvAsInt("REDIS_DB", c.Redis.DB)

	c.R2.Endpoint = getEnv("R2_ENDPOINT", c.R2.Endpoint)
	c.R2.AccessKey = getEnv("R2_ACCESS_KEY", c.R2.AccessKey)
	c.R2.SecretKey = getEnv("R2_SECRET_KEY", c.R2.SecretKey)
	c.R2.Bucket = getEnv("R2_BUCKET_NAME", c.R2.Bucket)
	c.R2.PublicBaseURL = getEnv("R2_PUBLIC_BASE_URL", c.R2.PublicBaseURL)

	c.Catalog.Source = getEnv("CATALOG_SOURCE", c.Catalog.Source)
	c.Catalog.Path = getEnv("CATALOG_PATH", c.Catalog.Path)
	c.Catalog.ObjectKey = getEnv("CATALOG_OBJECT_KEY", c.Catalog.ObjectKey)

	c.Menu.OrderConfirmDelay = getEnvAsDuration("ORDER_CONFIRM_DELAY", c.Menu.OrderConfirmDelay)
	c.Menu.SessionTTL = getEnvAsDuration("FILTER_SESSION_TTL", c.Menu.SessionTTL)
	c.Menu.SweepInterval = getEnvAsDuration("FILTER_SESSION_SWEEP", c.Menu.SweepInterval)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Catalog.Source {
	case CatalogFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for the file source")
		}
	case CatalogR2:
		if !c.R2.Enabled() {
			return fmt.Errorf("r2 bucket and endpoint are required for the r2 catalog source")
		}
		if c.Catalog.ObjectKey == "" {
			return fmt.Errorf("catalog object key is required for the r2 source")
		}
	case CatalogPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres catalog source")
		}
	default:
		return fmt.Errorf("unknown catalog source: %q", c.Catalog.Source)
	}

	if c.Menu.OrderConfirmDelay < 0 {
		return fmt.Errorf("order confirm delay must not be negative")
	}
	if c.Menu.SessionTTL <= 0 || c.Menu.SweepInterval <= 0 {
		return fmt.Errorf("filter session ttl and sweep interval must be positive")
	}

	return nil
}

func (r R2Config) Enabled() bool {
	return r.Bucket != "" && r.Endpoint != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
