package config

type DatabaseConfig struct {
	// Driver : хранилище ссылок и клиентов, "postgres" или "mongo"
	Driver  string `yaml:"driver"`
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// S3Config : Supabase Storage через S3-совместимый endpoint
type S3Config struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"accessKey"`
	SecretKey     string `yaml:"secretKey"`
	Local         bool   `yaml:"local"`
	PublicBaseURL string `yaml:"publicBaseURL"`
}

type JWTConfig struct {
	SecretKey       string `yaml:"secret_key"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

type AdminConfig struct {
	AdminToken string `yaml:"admin_token"`
}

type TTL struct {
	// S3AndRedis : время жизни кэша клиента в Redis, секунды
	S3AndRedis int `yaml:"S3AndRedis"`
}

type LinksConfig struct {
	PurgeCron string `yaml:"purgeCron"`
	// DefaultSignedURLTTL : секунды, используется когда expiresIn не передан
	DefaultSignedURLTTL int `yaml:"defaultSignedURLTTL"`
	// MinSignedURLTTL : нижняя граница TTL ссылки на документ внутри гранта, секунды
	MinSignedURLTTL   int `yaml:"minSignedURLTTL"`
	MaxExpiresInHours int `yaml:"maxExpiresInHours"`
}

type UploadConfig struct {
	MaxRequestBytes int64 `yaml:"maxRequestBytes"`
}

type RateLimitConfig struct {
	PerMinute int `yaml:"perMinute"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}
