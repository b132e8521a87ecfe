package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	HTTP  HTTPConfig
	Auth  AuthConfig
	MySQL MySQLConfig
	Mongo MongoConfig
	Redis RedisConfig
	Audit AuditConfig
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT,  default=15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT, default=15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,   default=10s"`
}

// AuthConfig holds the signing secret and login policy. JWTSecret is
// required and must never be logged.
type AuthConfig struct {
	JWTSecret          string `env:"JWT_SECRET, required"`
	BcryptCost         int    `env:"BCRYPT_COST, default=12"`
	UniformLoginErrors bool   `env:"AUTH_UNIFORM_LOGIN_ERRORS, default=false"`
}

type MySQLConfig struct {
	DSN             string        `env:"MYSQL_DSN, default=logistica:logistica@tcp(localhost:3306)/logistica?parseTime=true&clientFoundRows=true&charset=utf8mb4"`
	MaxOpenConns    int           `env:"MYSQL_MAX_OPEN_CONNS,    default=5"`
	MaxIdleConns    int           `env:"MYSQL_MAX_IDLE_CONNS,    default=1"`
	ConnMaxLifetime time.Duration `env:"MYSQL_CONN_MAX_LIFETIME, default=30m"`
	QueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT,        default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=logistica_audit"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
