package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig  `yaml:"databaseConfig"`
	MongoConfig    MongoConfig     `yaml:"mongoConfig"`
	RedisConfig    RedisConfig     `yaml:"redisConfig"`
	ServerAddr     string          `yaml:"serverAddr"`
	S3Config       S3Config        `yaml:"s3Config"`
	JWT            JWTConfig       `yaml:"jwt"`
	Admin          AdminConfig     `yaml:"admin"`
	TTL            TTL             `yaml:"TTL"`
	Links          LinksConfig     `yaml:"links"`
	Upload         UploadConfig    `yaml:"upload"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Log            LogConfig       `yaml:"log"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфигурацию %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конфигурацию: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides : секреты можно не хранить в config.yaml
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("CRM_DATABASE_DSN"); v != "" {
		cfg.DatabaseConfig.DSN = v
	}
	if v := os.Getenv("CRM_JWT_SECRET"); v != "" {
		cfg.JWT.SecretKey = v
	}
	if v := os.Getenv("CRM_S3_ACCESS_KEY"); v != "" {
		cfg.S3Config.AccessKey = v
	}
	if v := os.Getenv("CRM_S3_SECRET_KEY"); v != "" {
		cfg.S3Config.SecretKey = v
	}
	if v := os.Getenv("CRM_ADMIN_TOKEN"); v != "" {
		cfg.Admin.AdminToken = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.DatabaseConfig.Driver == "" {
		cfg.DatabaseConfig.Driver = "postgres"
	}
	if cfg.MongoConfig.Database == "" {
		cfg.MongoConfig.Database = "crm"
	}
	if cfg.JWT.AccessTokenTTL == "" {
		cfg.JWT.AccessTokenTTL = "15m"
	}
	if cfg.JWT.RefreshTokenTTL == "" {
		cfg.JWT.RefreshTokenTTL = "720h"
	}
	if cfg.TTL.S3AndRedis <= 0 {
		cfg.TTL.S3AndRedis = 300
	}
	if cfg.Links.PurgeCron == "" {
		cfg.Links.PurgeCron = "*/30 * * * *"
	}
	if cfg.Links.DefaultSignedURLTTL <= 0 {
		cfg.Links.DefaultSignedURLTTL = 3600
	}
	if cfg.Links.MinSignedURLTTL <= 0 {
		cfg.Links.MinSignedURLTTL = 300
	}
	if cfg.Links.MaxExpiresInHours <= 0 {
		cfg.Links.MaxExpiresInHours = 24 * 30
	}
	if cfg.Upload.MaxRequestBytes <= 0 {
		cfg.Upload.MaxRequestBytes = 50 << 20
	}
	if cfg.RateLimit.PerMinute <= 0 {
		cfg.RateLimit.PerMinute = 60
	}
}

// SignedURLTTL : TTL подписанной ссылки по умолчанию
func (c *AppConfig) SignedURLTTL() time.Duration {
	return time.Duration(c.Links.DefaultSignedURLTTL) * time.Second
}

// MinSignedURLTTL : нижняя граница TTL для ссылок внутри гранта
func (c *AppConfig) MinSignedURLTTL() time.Duration {
	return time.Duration(c.Links.MinSignedURLTTL) * time.Second
}

func (c *AppConfig) CacheTTL() time.Duration {
	return time.Duration(c.TTL.S3AndRedis) * time.Second
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}

func SetupMongo(cfg *MongoConfig) (*MongoClient, error) {
	return NewMongoClient(cfg)
}
