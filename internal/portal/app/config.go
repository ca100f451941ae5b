package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/solclone/portal/internal/portal/service"
)

type Config struct {
	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	DatabaseFile string `env:"PORTAL_DATABASE_FILE" envDefault:"portal.db"`

	TOTPIssuer string        `env:"PORTAL_TOTP_ISSUER" envDefault:"portal-admin"`
	SessionTTL time.Duration `env:"PORTAL_SESSION_TTL" envDefault:"24h"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	// SeedAdminSpecs holds "username:password" pairs created at startup if
	// missing. Existing accounts are never touched.
	SeedAdminSpecs []string `env:"PORTAL_SEED_ADMINS" envSeparator:","`
}

// LoadConfig reads configuration from the environment, with an optional .env
// file for local development.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// SeedAdmins parses the configured "username:password" pairs.
func (c Config) SeedAdmins() ([]service.SeedAdmin, error) {
	seeds := make([]service.SeedAdmin, 0, len(c.SeedAdminSpecs))
	for _, spec := range c.SeedAdminSpecs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		username, password, ok := strings.Cut(spec, ":")
		if !ok || username == "" || password == "" {
			return nil, fmt.Errorf("malformed seed admin entry %q, want username:password", spec)
		}
		seeds = append(seeds, service.SeedAdmin{Username: username, Password: password})
	}
	return seeds, nil
}

// Production reports whether the deployment should enable production-only
// hardening such as the Secure cookie flag.
func (c Config) Production() bool {
	return c.Env == "prod"
}
