package config

import (
	"encoding/json"
	"os"

	"github.com/champsapp/champs-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	Endpoint     string `json:"endpoint"`
	BaseURL      string `json:"base_url"`
	DatabasePath string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.JsonConfigFlags();
// when neither is given, no JSON is loaded. Read or unmarshal errors panic
// (a broken config file should stop startup, matching flag parse behavior).
//
// Only fields present in the file override the current Config.
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

	if jc.Endpoint != "" {
		cfg.Endpoint = Endpoint(jc.Endpoint)
	}
	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
