package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Redis         RedisConfig
	Cart          CartConfig
	AuthRateLimit AuthRateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPSBUZZ_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPSBUZZ_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHOPSBUZZ_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPSBUZZ_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPSBUZZ_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SHOPSBUZZ_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPSBUZZ_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPSBUZZ_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPSBUZZ_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPSBUZZ_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPSBUZZ_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPSBUZZ_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPSBUZZ_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig controls how long the per-session cart and login records live.
// Zero means no expiry, matching the browser-storage behavior the API
// replaces: records survive until an external clear or eviction.
type CartConfig struct {
	RecordTTL time.Duration `envconfig:"SHOPSBUZZ_CART_RECORD_TTL" default:"0"`
	LoginTTL  time.Duration `envconfig:"SHOPSBUZZ_LOGIN_RECORD_TTL" default:"0"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SHOPSBUZZ_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"SHOPSBUZZ_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"SHOPSBUZZ_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"SHOPSBUZZ_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"SHOPSBUZZ_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"SHOPSBUZZ_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}
