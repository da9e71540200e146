package config

import (
	"encoding/json"
	"os"

	"github.com/meetavet/meetavet/internal/flagx"
	"github.com/meetavet/meetavet/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointURL   string         `json:"server_endpoint_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DatabaseFile        string         `json:"database_file"`
	LogLevel            string         `json:"log_level"`
	LogPretty           *bool          `json:"log_pretty"`
	PaymentPollInterval timex.Duration `json:"payment_poll_interval"`
	PaymentWaitTimeout  timex.Duration `json:"payment_wait_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. When no file is given, nothing happens. Read or
// unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
	if jc.PaymentPollInterval.Duration > 0 {
		cfg.PaymentPollInterval = jc.PaymentPollInterval.Duration
	}
	if jc.PaymentWaitTimeout.Duration > 0 {
		cfg.PaymentWaitTimeout = jc.PaymentWaitTimeout.Duration
	}
}
