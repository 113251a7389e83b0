package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers.
const (
	DriverFile  = "file"
	DriverMongo = "mongo"
	DriverRedis = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=4000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	BcryptCost int `env:"BCRYPT_COST, default=10"`

	Session   SessionConfig
	Store     StoreConfig
	Bootstrap BootstrapConfig
}

// SessionConfig controls the session cookie. Its value is the username.
type SessionConfig struct {
	CookieName string        `env:"COOKIE_NAME,   default=user4000"`
	TTL        time.Duration `env:"SESSION_TTL,   default=24h"`
	Secure     bool          `env:"COOKIE_SECURE, default=false"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=file"`
	File   string `env:"STORE_FILE,   default=db.json"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,         default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,          default=demo_app"`
	DocumentID string `env:"STORE_DOCUMENT_ID, default=db"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Key      string `env:"REDIS_KEY,      default=demo:db"`
}

// BootstrapConfig seeds the first Administrator into an empty store. An
// empty username disables seeding.
type BootstrapConfig struct {
	Username string `env:"BOOTSTRAP_ADMIN_USERNAME, default=admin"`
	Password string `env:"BOOTSTRAP_ADMIN_PASSWORD, default=admin"`
}

// IsDevelopment reports whether the server runs in the development
// environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverMongo, DriverRedis:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("config: COOKIE_NAME must not be empty")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through the given lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
