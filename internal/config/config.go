package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	CORS     CORS     `envPrefix:"CORS_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"4000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains database connection parameters. The DSN has no default:
// the process refuses to start without it.
type Database struct {
	DSN     string        `env:"DSN,required,notEmpty"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// JWT contains token signing parameters. The secret has no default:
// the process refuses to start without it.
type JWT struct {
	Secret   string        `env:"SECRET,required,notEmpty"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}

// CORS contains allowed-origins parameters.
type CORS struct {
	Origins []string `env:"ORIGINS" envSeparator:"," envDefault:"*"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
