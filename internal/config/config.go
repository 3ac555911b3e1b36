package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"photomarket/internal/utils"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Storage  StorageConfig  `yaml:"storage"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins string   `yaml:"allowed_origins"`
	BodyLimitMB    int      `yaml:"body_limit_mb"`
	ReadTimeout    Duration `yaml:"read_timeout"`
	WriteTimeout   Duration `yaml:"write_timeout"`
}

type DatabaseConfig struct {
	URL         string `yaml:"url"`
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"sslmode"`
	MaxConns    int    `yaml:"max_conns"`
	MinConns    int    `yaml:"min_conns"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type AuthConfig struct {
	JWTSecret  string   `yaml:"jwt_secret"`
	AccessTTL  Duration `yaml:"access_ttl"`
	RefreshTTL Duration `yaml:"refresh_ttl"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type StorageConfig struct {
	Driver        string `yaml:"driver"` // "s3" or "disk"
	UploadDir     string `yaml:"upload_dir"`
	Endpoint      string `yaml:"endpoint"`
	Region        string `yaml:"region"`
	Bucket        string `yaml:"bucket"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	PublicBaseURL string `yaml:"public_base_url"`
	PathStyle     bool   `yaml:"path_style"`
	MaxUploadMB   int    `yaml:"max_upload_mb"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Duration lets YAML carry values like "72h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns a configuration that runs against a local Postgres with
// everything else at its zero-dependency setting.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "3001",
			AllowedOrigins: "*",
			BodyLimitMB:    12,
			ReadTimeout:    Duration(10 * time.Second),
			WriteTimeout:   Duration(30 * time.Second),
		},
		Database: DatabaseConfig{
			Host:        "localhost",
			Port:        "5432",
			User:        "postgres",
			Password:    "postgres",
			Name:        "photomarket",
			SSLMode:     "disable",
			MaxConns:    10,
			MinConns:    2,
			AutoMigrate: true,
		},
		Auth: AuthConfig{
			JWTSecret:  "secret",
			AccessTTL:  Duration(72 * time.Hour),
			RefreshTTL: Duration(30 * 24 * time.Hour),
		},
		Redis: RedisConfig{
			Address:  "localhost:6379",
			PoolSize: 10,
		},
		Storage: StorageConfig{
			Driver:      "disk",
			UploadDir:   "uploads",
			Region:      "us-east-1",
			Bucket:      "photomarket",
			MaxUploadMB: 10,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads the optional YAML file at path, expanding ${VARS} first, then
// applies environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			expanded := []byte(os.ExpandEnv(string(data)))
			if err := yaml.Unmarshal(expanded, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = utils.GetEnv("PORT", cfg.Server.Port)
	cfg.Server.AllowedOrigins = utils.GetEnv("ALLOWED_ORIGINS", cfg.Server.AllowedOrigins)

	cfg.Database.URL = utils.GetEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.Host = utils.GetEnv("POSTGRES_HOST", cfg.Database.Host)
	cfg.Database.Port = utils.GetEnv("POSTGRES_PORT", cfg.Database.Port)
	cfg.Database.User = utils.GetEnv("POSTGRES_USER", cfg.Database.User)
	cfg.Database.Password = utils.GetEnv("POSTGRES_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = utils.GetEnv("POSTGRES_DB", cfg.Database.Name)
	cfg.Database.SSLMode = utils.GetEnv("POSTGRES_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.MaxConns = utils.GetEnvInt("DB_MAX_CONNS", cfg.Database.MaxConns)
	cfg.Database.AutoMigrate = utils.GetEnvBool("DB_AUTO_MIGRATE", cfg.Database.AutoMigrate)

	cfg.Auth.JWTSecret = utils.GetEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.AccessTTL = Duration(utils.GetEnvDuration("ACCESS_TOKEN_TTL", cfg.Auth.AccessTTL.Std()))
	cfg.Auth.RefreshTTL = Duration(utils.GetEnvDuration("REFRESH_TOKEN_TTL", cfg.Auth.RefreshTTL.Std()))

	cfg.Redis.Address = utils.GetEnv("REDIS_ADDR", cfg.Redis.Address)
	cfg.Redis.Password = utils.GetEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = utils.GetEnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.Storage.Driver = utils.GetEnv("STORAGE_DRIVER", cfg.Storage.Driver)
	cfg.Storage.UploadDir = utils.GetEnv("UPLOAD_DIR", cfg.Storage.UploadDir)
	cfg.Storage.Endpoint = utils.GetEnv("S3_ENDPOINT", cfg.Storage.Endpoint)
	cfg.Storage.Region = utils.GetEnv("S3_REGION", cfg.Storage.Region)
	cfg.Storage.Bucket = utils.GetEnv("S3_BUCKET", cfg.Storage.Bucket)
	cfg.Storage.AccessKey = utils.GetEnv("S3_ACCESS_KEY", cfg.Storage.AccessKey)
	cfg.Storage.SecretKey = utils.GetEnv("S3_SECRET_KEY", cfg.Storage.SecretKey)
	cfg.Storage.PublicBaseURL = utils.GetEnv("S3_PUBLIC_BASE_URL", cfg.Storage.PublicBaseURL)
	cfg.Storage.PathStyle = utils.GetEnvBool("S3_PATH_STYLE", cfg.Storage.PathStyle)
	cfg.Storage.MaxUploadMB = utils.GetEnvInt("MAX_UPLOAD_MB", cfg.Storage.MaxUploadMB)

	cfg.Metrics.Enabled = utils.GetEnvBool("METRICS_ENABLED", cfg.Metrics.Enabled)
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("invalid config: auth.jwt_secret must not be empty")
	}
	if c.Storage.Driver != "s3" && c.Storage.Driver != "disk" {
		return fmt.Errorf("invalid config: unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "s3" && c.Storage.Bucket == "" {
		return errors.New("invalid config: storage.bucket must not be empty")
	}
	if c.Storage.MaxUploadMB <= 0 {
		return errors.New("invalid config: storage.max_upload_mb must be positive")
	}
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.Name == "") {
		return errors.New("invalid config: database url or host/name required")
	}
	return nil
}

// ConnString prefers DATABASE_URL and falls back to the individual fields.
func (d DatabaseConfig) ConnString() string {
	if d.URL != "" {
		return d.URL
	}
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" +
		d.Name + "?sslmode=" + d.SSLMode
}

// MaxUploadBytes is the largest accepted image blob.
func (s StorageConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}
