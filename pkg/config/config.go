package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "KOODAKZIBA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Password PasswordConfig
	Cart     CartConfig
	Seed     SeedConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KOODAKZIBA_APP_ENV" default:"dev"`
	Port         string `envconfig:"KOODAKZIBA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"KOODAKZIBA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KOODAKZIBA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig locates the flat JSON collections on disk.
type StorageConfig struct {
	DataDir      string `envconfig:"KOODAKZIBA_DATA_DIR" default:"data"`
	ProductsFile string `envconfig:"KOODAKZIBA_PRODUCTS_FILE" default:"products.json"`
	UsersFile    string `envconfig:"KOODAKZIBA_USERS_FILE" default:"users.json"`
}

type RedisConfig struct {
	URL          string        `envconfig:"KOODAKZIBA_REDIS_URL"`
	Address      string        `envconfig:"KOODAKZIBA_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"KOODAKZIBA_REDIS_PASSWORD"`
	DB           int           `envconfig:"KOODAKZIBA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KOODAKZIBA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KOODAKZIBA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KOODAKZIBA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KOODAKZIBA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KOODAKZIBA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"KOODAKZIBA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KOODAKZIBA_JWT_ISSUER" default:"koodakziba"`
	ExpirationMinutes int    `envconfig:"KOODAKZIBA_JWT_EXPIRATION_MINUTES" default:"720"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KOODAKZIBA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KOODAKZIBA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KOODAKZIBA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KOODAKZIBA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KOODAKZIBA_ARGON_KEY_LEN" default:"32"`
}

// CartConfig controls how long an idle visitor cart survives in Redis.
type CartConfig struct {
	SessionTTL time.Duration `envconfig:"KOODAKZIBA_CART_SESSION_TTL" default:"168h"`
}

// SeedConfig holds the credentials for the single seeded admin account.
type SeedConfig struct {
	AdminUsername string `envconfig:"KOODAKZIBA_ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `envconfig:"KOODAKZIBA_ADMIN_EMAIL" default:"admin@koodakziba.ir"`
	AdminPassword string `envconfig:"KOODAKZIBA_ADMIN_PASSWORD" default:"change-me"`
	AdminPhone    string `envconfig:"KOODAKZIBA_ADMIN_PHONE" default:"09123456789"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"KOODAKZIBA_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
