package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the API server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Token is the bearer token used for authenticated commands.
	// Env: AUTH_TOKEN
	Token string `env:"AUTH_TOKEN"`

	// Args holds the positional arguments: the command and its operands.
	Args []string
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the given command-line arguments.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	for _, src := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var address NetAddress
	var token string
	var timeout time.Duration

	fs := flag.NewFlagSet("go-auth-client", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Var(&address, "a", "API server address host:port")
	fs.StringVar(&token, "t", "", "Bearer token")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    address.String(),
			RequestTimeout: timeout,
		},
		Token: token,
		Args:  fs.Args(),
	}, nil
}
