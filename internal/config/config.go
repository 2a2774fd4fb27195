package config

import "time"

// Config is the root application configuration.
type Config struct {
	Env       string          `yaml:"env" env:"APP_ENV" env-default:"local"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Matching  MatchingConfig  `yaml:"matching"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Insight   InsightConfig   `yaml:"insight"`
	Retention RetentionConfig `yaml:"retention"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token verification settings. Access tokens are issued by
// the external identity service; this API only validates them.
// AccessTokenTTL is used by the local token mint in tests and development
// tooling, not by the server itself.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"foundermind"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// MatchingConfig holds the operational peer-matching knobs. These tune
// ranking behavior per environment; the psychometric content itself
// (dimension weights, centroids) is code, not configuration.
type MatchingConfig struct {
	SimilarityFloor        float64 `yaml:"similarity_floor"         env:"MATCHING_SIMILARITY_FLOOR" env-default:"60"`
	MaxMatches             int     `yaml:"max_matches"              env:"MATCHING_MAX_MATCHES"      env-default:"10"`
	ArchetypeBonus         float64 `yaml:"archetype_bonus"          env:"MATCHING_ARCHETYPE_BONUS"  env-default:"10"`
	SharedDimensionEpsilon int     `yaml:"shared_dimension_epsilon" env:"MATCHING_SHARED_EPSILON"   env-default:"10"`
}

// RateLimitConfig holds per-client rate limiting settings.
type RateLimitConfig struct {
	RPS       float64 `yaml:"rps"        env:"RATE_LIMIT_RPS"        env-default:"10"`
	Burst     int     `yaml:"burst"      env:"RATE_LIMIT_BURST"      env-default:"20"`
	CacheSize int     `yaml:"cache_size" env:"RATE_LIMIT_CACHE_SIZE" env-default:"10000"`
}

// InsightConfig holds AI insight generation settings. When disabled, or when
// no API key is set, the stub generator serves the fixed fallback text.
type InsightConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"INSIGHT_ENABLED"    env-default:"false"`
	APIKey    string        `yaml:"api_key"    env:"INSIGHT_API_KEY"`
	Model     string        `yaml:"model"      env:"INSIGHT_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"INSIGHT_MAX_TOKENS" env-default:"512"`
	Timeout   time.Duration `yaml:"timeout"    env:"INSIGHT_TIMEOUT"    env-default:"15s"`
}

// RetentionConfig holds data retention settings for the cleanup job.
type RetentionConfig struct {
	JournalDays int `yaml:"journal_days" env:"RETENTION_JOURNAL_DAYS" env-default:"365"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
