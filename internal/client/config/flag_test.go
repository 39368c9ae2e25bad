package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-e", "local", "-d", "other.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, EndpointLocal, cfg.Endpoint)
	assert.Equal(t, "other.db", cfg.DatabasePath)
}

func TestParseFlags_BaseURLOverride(t *testing.T) {
	withArgs(t, "-u", "http://127.0.0.1:5001/api")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://127.0.0.1:5001/api", cfg.BaseURL)
	assert.Equal(t, EndpointRemote, cfg.Endpoint)
}

func TestParseFlags_NoFlagsKeepDefaults(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, EndpointRemote, cfg.Endpoint)
	assert.Equal(t, "champs.db", cfg.DatabasePath)
}
