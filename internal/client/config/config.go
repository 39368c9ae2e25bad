// Package config loads runtime settings for the champs CLI.
//
// Sources are applied in order, later ones winning:
// defaults -> environment (.env / process env) -> JSON file -> flags.
package config

import "fmt"

// Endpoint names a recognized backend deployment.
type Endpoint string

const (
	// EndpointLocal targets a backend running on the developer's machine.
	EndpointLocal Endpoint = "local"
	// EndpointRemote targets the hosted production backend.
	EndpointRemote Endpoint = "remote"
)

const (
	localBaseURL  = "http://localhost:5001/api"
	remoteBaseURL = "https://champsback.onrender.com/api"
)

// Config holds runtime settings for the champs CLI.
//
// Fields:
//   - Endpoint: which backend deployment to talk to (local or remote).
//   - BaseURL: explicit base URL override; when set it wins over Endpoint.
//   - DatabasePath: sqlite file holding session and preference data.
type Config struct {
	Endpoint     Endpoint
	BaseURL      string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = EndpointRemote
	c.DatabasePath = "champs.db"
}

// ResolveBaseURL returns the backend base URL for this configuration.
// The decision is made once at startup; nothing re-resolves per request.
func (c *Config) ResolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	switch c.Endpoint {
	case EndpointLocal:
		return localBaseURL, nil
	case EndpointRemote:
		return remoteBaseURL, nil
	default:
		return "", fmt.Errorf("unknown endpoint %q (expected %q or %q)", c.Endpoint, EndpointLocal, EndpointRemote)
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
