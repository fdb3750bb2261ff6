package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultClientTimeout = 10 * time.Second

// ClientAdapter configures the HTTP client used by the command-line client.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server (e.g. "localhost:8080"
	// or "https://cards.example.com").
	// Env: CLIENT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Username and Password are sent as HTTP Basic credentials.
	// Env: CLIENT_USERNAME, CLIENT_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// HashKey signs create requests when the server checks integrity.
	// Env: CLIENT_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Args are the positional arguments left after flag parsing.
	Args []string
}

// GetClientConfig reads the client configuration from the environment and
// os.Args; flags override environment values.
func GetClientConfig() (*ClientConfig, error) {
	return parseClientConfig(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultClientTimeout,
		},
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "Server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", cfg.Adapter.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.Adapter.Username, "u", cfg.Adapter.Username, "Username")
	fs.StringVar(&cfg.Adapter.Password, "p", cfg.Adapter.Password, "Password")
	fs.StringVar(&cfg.Adapter.HashKey, "hash-key", cfg.Adapter.HashKey, "Request integrity hash key")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Args = fs.Args()

	return cfg, cfg.validate()
}
