package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000", c.ServerEndpointURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, "meetavet.db", c.DatabaseFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.LogPretty)
	assert.Equal(t, 3*time.Second, c.PaymentPollInterval)
	assert.Equal(t, 90*time.Second, c.PaymentWaitTimeout)
}

func Test_parseEnv_Overlay(t *testing.T) {
	t.Setenv("MEETAVET_SERVER_URL", "https://api.example.com")
	t.Setenv("MEETAVET_REQUEST_TIMEOUT", "7s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com", c.ServerEndpointURL)
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
	// Untouched fields keep their defaults.
	assert.Equal(t, "meetavet.db", c.DatabaseFile)
	assert.Equal(t, 3*time.Second, c.PaymentPollInterval)
}

func Test_parseEnv_UnsetLeavesDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://127.0.0.1:5000", c.ServerEndpointURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}
