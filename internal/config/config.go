package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Relation store (likes, subscriptions)
	Database DatabaseConfig `json:"database"`

	// Entity store (users, videos, comments, tweets, playlists)
	MongoDB MongoDBConfig `json:"mongodb"`

	Redis RedisConfig `json:"redis"`

	NATS NATSConfig `json:"nats"`

	// Engagement event dispatch
	Events EventsConfig `json:"events"`

	Auth AuthConfig `json:"auth"`

	Media MediaConfig `json:"media"`

	Feed FeedConfig `json:"feed"`

	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

type RedisConfig struct {
	Host     string        `json:"host"`
	Port     string        `json:"port"`
	Password string        `json:"password"`
	DB       int           `json:"db"`
	StatsTTL time.Duration `json:"stats_ttl"`
	Enabled  bool          `json:"enabled"`
}

type NATSConfig struct {
	Host          string `json:"host"`
	Port          string `json:"port"`
	SubjectPrefix string `json:"subject_prefix"`
	Enabled       bool   `json:"enabled"`
}

// EventsConfig sizes the async dispatcher in front of the publisher
type EventsConfig struct {
	Workers    int `json:"workers"`
	BufferSize int `json:"buffer_size"`
}

type AuthConfig struct {
	JWTSecret string        `json:"-"`
	Issuer    string        `json:"issuer"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

type MediaConfig struct {
	BaseURL        string `json:"base_url"`
	MaxUploadBytes int64  `json:"max_upload_bytes"`
	TempDir        string `json:"temp_dir"`
}

// FeedConfig bounds paginated views
type FeedConfig struct {
	DefaultPageSize int `json:"default_page_size"`
	MaxPageSize     int `json:"max_page_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, console
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	serverPort := getEnv("SERVER_PORT", "8000")

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			Environment:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "gotube"),
			Password:     getEnv("MYSQL_PASSWORD", "gotube123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "gotube"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", "admin"),
			Password: getEnv("MONGO_PASSWORD", "admin123"),
			Database: getEnv("MONGO_DATABASE", "gotube"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			StatsTTL: getEnvAsDuration("REDIS_STATS_TTL", 30*time.Second),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},
		NATS: NATSConfig{
			Host:          getEnv("NATS_HOST", "localhost"),
			Port:          getEnv("NATS_PORT", "4222"),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "gotube"),
			Enabled:       getEnvAsBool("NATS_ENABLED", false),
		},
		Events: EventsConfig{
			Workers:    getEnvAsInt("EVENT_WORKERS", 4),
			BufferSize: getEnvAsInt("EVENT_BUFFER_SIZE", 1000),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "gotube"),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		Media: MediaConfig{
			BaseURL:        getEnv("MEDIA_BASE_URL", fmt.Sprintf("http://localhost:%s/media/", serverPort)),
			MaxUploadBytes: int64(getEnvAsInt("MEDIA_MAX_UPLOAD_MB", 512)) << 20,
			TempDir:        getEnv("MEDIA_TEMP_DIR", os.TempDir()),
		},
		Feed: FeedConfig{
			DefaultPageSize: getEnvAsInt("FEED_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     getEnvAsInt("FEED_MAX_PAGE_SIZE", 100),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	m := cfg.MongoDB
	if m.Username == "" || m.Password == "" {
		return fmt.Sprintf("mongodb://%s:%s/%s", m.Host, m.Port, m.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
		m.Username, m.Password, m.Host, m.Port, m.Database)
}

func (cfg *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port)
}

func (cfg *Config) NATSURL() string {
	return fmt.Sprintf("nats://%s:%s", cfg.NATS.Host, cfg.NATS.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
