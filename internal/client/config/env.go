package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig is a DTO for the environment layer. Unset variables leave the
// zero value, which the overlay skips, so env only overrides what it names.
type envConfig struct {
	ServerEndpointURL   string        `env:"MEETAVET_SERVER_URL"`
	RequestTimeout      time.Duration `env:"MEETAVET_REQUEST_TIMEOUT"`
	DatabaseFile        string        `env:"MEETAVET_DB_FILE"`
	LogLevel            string        `env:"MEETAVET_LOG_LEVEL"`
	PaymentPollInterval time.Duration `env:"MEETAVET_PAYMENT_POLL_INTERVAL"`
	PaymentWaitTimeout  time.Duration `env:"MEETAVET_PAYMENT_WAIT_TIMEOUT"`
}

// parseEnv overlays Config with values from the process environment.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process(context.Background(), &ec); err != nil {
		panic(err)
	}

	if ec.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = ec.ServerEndpointURL
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabaseFile != "" {
		cfg.DatabaseFile = ec.DatabaseFile
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.PaymentPollInterval > 0 {
		cfg.PaymentPollInterval = ec.PaymentPollInterval
	}
	if ec.PaymentWaitTimeout > 0 {
		cfg.PaymentWaitTimeout = ec.PaymentWaitTimeout
	}
}
