package config

import "time"

// Config holds runtime settings for the Meet-A-Vet client.
//
// Fields:
//   - ServerEndpointURL: base HTTP origin of the backend.
//   - RequestTimeout: per-request bound; requests exceeding it surface as a
//     network failure.
//   - DatabaseFile: path of the local SQLite file holding the credential.
//   - LogLevel / LogPretty: logging verbosity and console formatting.
//   - PaymentPollInterval: how often the client polls an initiated payment.
//   - PaymentWaitTimeout: how long the client waits for an initiated payment
//     to reach a terminal state before giving up.
type Config struct {
	ServerEndpointURL   string
	RequestTimeout      time.Duration
	DatabaseFile        string
	LogLevel            string
	LogPretty           bool
	PaymentPollInterval time.Duration
	PaymentWaitTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 5 * time.Second
	c.DatabaseFile = "meetavet.db"
	c.LogLevel = "info"
	c.LogPretty = true
	c.PaymentPollInterval = 3 * time.Second
	c.PaymentWaitTimeout = 90 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
