package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Inference InferenceConfig
	Artifacts ArtifactsConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type AuthConfig struct {
	JWTSecretKey      string
	TokenTTL          time.Duration
	LoginRateBurst    int
	LoginRateInterval time.Duration
}

type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type InferenceConfig struct {
	BaseURL      string
	HTTPTimeout  time.Duration
	MaxNewTokens int
	Warmup       bool
}

type ArtifactsConfig struct {
	Backend string
	Dir     string
	MinIO   MinIOConfig
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ArtifactsFS    = "fs"
	ArtifactsMinIO = "minio"
)

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "127.0.0.1"),
			Port:         getEnvOrDefault("SERVER_PORT", "5000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 180*time.Second),
			AllowOrigins: getEnvOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		Auth: AuthConfig{
			JWTSecretKey:      getEnvOrDefault("JWT_SECRET_KEY", os.Getenv("SECRET_KEY")),
			TokenTTL:          getDurationOrDefault("JWT_TOKEN_TTL", 24*time.Hour),
			LoginRateBurst:    getIntOrDefault("LOGIN_RATE_BURST", 5),
			LoginRateInterval: getDurationOrDefault("LOGIN_RATE_INTERVAL", 12*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverSQLite)),
			Path:            getEnvOrDefault("DB_PATH", "instance/app.db"),
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "translations"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		Inference: InferenceConfig{
			BaseURL:      strings.TrimSuffix(getEnvOrDefault("INFERENCE_BASE_URL", "http://127.0.0.1:8080"), "/"),
			HTTPTimeout:  getDurationOrDefault("INFERENCE_HTTP_TIMEOUT", 120*time.Second),
			MaxNewTokens: getIntOrDefault("MODEL_MAX_NEW_TOKENS", 200),
			Warmup:       getBoolOrDefault("MODEL_WARMUP", false),
		},
		Artifacts: ArtifactsConfig{
			Backend: strings.ToLower(getEnvOrDefault("MODEL_ARTIFACTS_BACKEND", ArtifactsFS)),
			Dir:     getEnvOrDefault("MODEL_ARTIFACTS_DIR", "models"),
			MinIO: MinIOConfig{
				Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "127.0.0.1:9000"),
				AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
				BucketName:      getEnvOrDefault("AWS_BUCKET", "models"),
				Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
				UseSSL:          getBoolOrDefault("AWS_USE_SSL", false),
			},
		},
	}
}

// DSN returns the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

// Origins splits the CORS allow list into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.Server.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY (or SECRET_KEY) is required")
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Artifacts.Backend {
	case ArtifactsFS:
		if c.Artifacts.Dir == "" {
			return fmt.Errorf("MODEL_ARTIFACTS_DIR is required for fs artifacts")
		}
	case ArtifactsMinIO:
		if c.Artifacts.MinIO.Endpoint == "" {
			return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
		}
		if c.Artifacts.MinIO.AccessKeyID == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
		}
		if c.Artifacts.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
		}
	default:
		return fmt.Errorf("unsupported MODEL_ARTIFACTS_BACKEND %q", c.Artifacts.Backend)
	}
	if c.Inference.MaxNewTokens < 1 {
		return fmt.Errorf("MODEL_MAX_NEW_TOKENS must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
