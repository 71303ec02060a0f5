package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/harborbank/authd/pkg/jwtx"
)

// Config holds all environment-based configuration for authd.
type Config struct {
	// Issuer is the iss claim stamped on every token.
	Issuer string `env:"AUTHD_ISSUER" envDefault:"harborbank-authd"`

	// JWTSecret is the shared HMAC signing key. Required, at least 32
	// bytes. It is loaded once and must never be logged.
	JWTSecret string `env:"AUTHD_JWT_SECRET"`

	// ClientTokenTTL is the configured lifetime of client tokens. User and
	// consent token lifetimes are fixed by the codec.
	ClientTokenTTL time.Duration `env:"AUTHD_CLIENT_TOKEN_TTL" envDefault:"1h"`

	// StoreDriver selects the registry backing store: "file" or "sqlite".
	StoreDriver string `env:"AUTHD_STORE_DRIVER" envDefault:"file"`

	// SeedFile is the JSON snapshot both drivers load the registries from.
	SeedFile string `env:"AUTHD_SEED_FILE" envDefault:"seed.json"`

	// DatabaseFile is the SQLite database path (sqlite driver only).
	DatabaseFile string `env:"AUTHD_DATABASE_FILE" envDefault:"authd.db"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads configuration from the environment, loading a .env file
// first if one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the constraints config parsing cannot express.
func (c Config) Validate() error {
	if len(c.JWTSecret) < jwtx.MinKeyLength {
		return fmt.Errorf("AUTHD_JWT_SECRET must be at least %d bytes", jwtx.MinKeyLength)
	}
	if c.StoreDriver != "file" && c.StoreDriver != "sqlite" {
		return fmt.Errorf("AUTHD_STORE_DRIVER must be \"file\" or \"sqlite\", got %q", c.StoreDriver)
	}
	if c.ClientTokenTTL <= 0 {
		return fmt.Errorf("AUTHD_CLIENT_TOKEN_TTL must be positive")
	}
	return nil
}
