package config

import (
	"time"
)

// StructuredConfig is the complete runtime configuration of the server.
// Field tags describe the environment variable names; nested groups carry
// their prefix via envPrefix.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	Adapter Adapter `envPrefix:"ADAPTER_"`

	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level secrets and session parameters.
type App struct {
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	SessionIssuer string `env:"SESSION_ISSUER"`

	SessionDuration time.Duration `env:"SESSION_DURATION"`

	BcryptCost int `env:"BCRYPT_COST"`

	Version string `env:"VERSION"`

	LogLevel string `env:"LOG_LEVEL"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB describes the relational store. Driver is optional: when empty it is
// derived from the DSN (postgres URLs select pgx, anything else sqlite3).
type DB struct {
	DSN string `env:"DATABASE_URI"`

	Driver string `env:"DRIVER"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Adapter configures outbound calls made by the server, i.e. the image probe.
type Adapter struct {
	ImageCheckTimeout time.Duration `env:"IMAGE_CHECK_TIMEOUT"`

	FallbackImageURL string `env:"FALLBACK_IMAGE_URL"`
}

// Default values applied to fields left empty by every source.
const (
	DefaultHTTPAddress       = ":8080"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultSessionIssuer     = "go-contact-book"
	DefaultSessionDuration   = 24 * time.Hour
	DefaultImageCheckTimeout = 3 * time.Second
	DefaultVersion           = "dev"
)

// GetStructuredConfig assembles the configuration from a .env file,
// environment variables, command-line flags and an optional JSON file.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
