package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Content  ContentConfig  `mapstructure:"content"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Security SecurityConfig `mapstructure:"security"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// StorageConfig holds document storage configuration. Driver selects the
// key-value backend: postgres, redis, or memory.
type StorageConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// RedisConfig holds Redis configuration for the redis storage driver
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AdminConfig holds the single-administrator gate configuration. The
// credential pair is compared verbatim and is a demo-grade gate only; see the
// auth service for the full caveat.
type AdminConfig struct {
	ID        string        `mapstructure:"id"`
	Password  string        `mapstructure:"password"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Issuer    string        `mapstructure:"issuer"`
}

// ContentConfig holds content presentation and mutation configuration
type ContentConfig struct {
	BoardPageSize         int           `mapstructure:"board_page_size"`
	VerseRotationInterval time.Duration `mapstructure:"verse_rotation_interval"`
	PublishRedirectDelay  time.Duration `mapstructure:"publish_redirect_delay"`
	MaxUploadBytes        int64         `mapstructure:"max_upload_bytes"`
	ContactRelayURL       string        `mapstructure:"contact_relay_url"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Filename string `mapstructure:"filename"`
}

// SecurityConfig holds security-related configuration
type SecurityConfig struct {
	CORSAllowedOrigins string        `mapstructure:"cors_allowed_origins"`
	RateLimitRequests  int           `mapstructure:"rate_limit_requests"`
	RateLimitWindow    time.Duration `mapstructure:"rate_limit_window"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// Load loads configuration from various sources
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	// Configure viper
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Bind environment variables
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "GospelArchive")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)

	// Server defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Storage defaults
	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("storage.host", "localhost")
	viper.SetDefault("storage.port", 5432)
	viper.SetDefault("storage.name", "gospelarchive")
	viper.SetDefault("storage.user", "postgres")
	viper.SetDefault("storage.password", "")
	viper.SetDefault("storage.ssl_mode", "disable")
	viper.SetDefault("storage.max_open_conns", 25)
	viper.SetDefault("storage.max_idle_conns", 10)
	viper.SetDefault("storage.conn_max_lifetime", "5m")
	viper.SetDefault("storage.conn_max_idle_time", "30s")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Admin gate defaults (demo parity with the original site)
	viper.SetDefault("admin.id", "vpqtl43")
	viper.SetDefault("admin.password", "TNwhdrla12!")
	viper.SetDefault("admin.jwt_secret", "gospel-archive-demo-secret")
	viper.SetDefault("admin.token_ttl", "24h")
	viper.SetDefault("admin.issuer", "gospel-archive")

	// Content defaults
	viper.SetDefault("content.board_page_size", 9)
	viper.SetDefault("content.verse_rotation_interval", "10s")
	viper.SetDefault("content.publish_redirect_delay", "500ms")
	viper.SetDefault("content.max_upload_bytes", 5*1024*1024)
	viper.SetDefault("content.contact_relay_url", "https://formspree.io/f/xeeeeqlw")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "json")
	viper.SetDefault("logger.output", "stdout")

	// Security defaults
	viper.SetDefault("security.cors_allowed_origins", "*")
	viper.SetDefault("security.rate_limit_requests", 100)
	viper.SetDefault("security.rate_limit_window", "1m")

	// Metrics defaults
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)
}

func bindEnvVars() {
	// App
	viper.BindEnv("app.name", "APP_NAME")
	viper.BindEnv("app.version", "APP_VERSION")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("app.debug", "APP_DEBUG")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	viper.BindEnv("server.idle_timeout", "SERVER_IDLE_TIMEOUT")

	// Storage
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")
	viper.BindEnv("storage.host", "DB_HOST")
	viper.BindEnv("storage.port", "DB_PORT")
	viper.BindEnv("storage.name", "DB_NAME")
	viper.BindEnv("storage.user", "DB_USER")
	viper.BindEnv("storage.password", "DB_PASSWORD")
	viper.BindEnv("storage.ssl_mode", "DB_SSL_MODE")
	viper.BindEnv("storage.max_open_conns", "DB_MAX_OPEN_CONNS")
	viper.BindEnv("storage.max_idle_conns", "DB_MAX_IDLE_CONNS")
	viper.BindEnv("storage.conn_max_lifetime", "DB_CONN_MAX_LIFETIME")
	viper.BindEnv("storage.conn_max_idle_time", "DB_CONN_MAX_IDLE_TIME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	// Admin
	viper.BindEnv("admin.id", "ADMIN_ID")
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	viper.BindEnv("admin.jwt_secret", "ADMIN_JWT_SECRET")
	viper.BindEnv("admin.token_ttl", "ADMIN_TOKEN_TTL")
	viper.BindEnv("admin.issuer", "ADMIN_ISSUER")

	// Content
	viper.BindEnv("content.board_page_size", "CONTENT_BOARD_PAGE_SIZE")
	viper.BindEnv("content.verse_rotation_interval", "CONTENT_VERSE_ROTATION_INTERVAL")
	viper.BindEnv("content.publish_redirect_delay", "CONTENT_PUBLISH_REDIRECT_DELAY")
	viper.BindEnv("content.max_upload_bytes", "CONTENT_MAX_UPLOAD_BYTES")
	viper.BindEnv("content.contact_relay_url", "CONTENT_CONTACT_RELAY_URL")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.format", "LOG_FORMAT")
	viper.BindEnv("logger.output", "LOG_OUTPUT")
	viper.BindEnv("logger.filename", "LOG_FILENAME")

	// Security
	viper.BindEnv("security.cors_allowed_origins", "CORS_ALLOWED_ORIGINS")
	viper.BindEnv("security.rate_limit_requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("security.rate_limit_window", "RATE_LIMIT_WINDOW")

	// Metrics
	viper.BindEnv("metrics.enabled", "ENABLE_METRICS")
	viper.BindEnv("metrics.port", "METRICS_PORT")
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "postgres", "redis", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q (expected postgres, redis, or memory)", cfg.Storage.Driver)
	}

	if cfg.Storage.Driver == "postgres" {
		if cfg.Storage.Host == "" {
			return fmt.Errorf("storage host is required")
		}
		if cfg.Storage.Name == "" {
			return fmt.Errorf("storage database name is required")
		}
	}

	if cfg.Admin.ID == "" || cfg.Admin.Password == "" {
		return fmt.Errorf("admin credentials must be set")
	}

	if cfg.Admin.JWTSecret == "" {
		return fmt.Errorf("admin JWT secret must be set")
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if cfg.Content.BoardPageSize <= 0 {
		return fmt.Errorf("board page size must be positive")
	}

	return nil
}

// GetDSN returns the database connection string for the postgres driver
func (cfg *StorageConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
}

// GetAddr returns the Redis address
func (cfg *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// IsDevelopment returns true if the environment is development
func (cfg *AppConfig) IsDevelopment() bool {
	return cfg.Environment == "development"
}

// IsProduction returns true if the environment is production
func (cfg *AppConfig) IsProduction() bool {
	return cfg.Environment == "production"
}
