package navcon

import (
	"encoding/json"
	"fmt"
	"os"
)

// LiveConfig controls UDP input settings for telemetry packets.
type LiveConfig struct {
	UDPAddr    string `json:"udp_addr"`
	ReadBuffer int    `json:"read_buffer"`
}

// OutputConfig controls UDP output settings for command packets.
type OutputConfig struct {
	UDPAddr string `json:"udp_addr"`
}

// VizConfig controls the optional expvar endpoint.
type VizConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

// DashboardConfig controls the optional terminal dashboard.
type DashboardConfig struct {
	Enabled bool `json:"enabled"`
}

// LogConfig controls console logging.
type LogConfig struct {
	Enabled bool `json:"enabled"`
}

// AppConfig aggregates all configuration sections.
type AppConfig struct {
	Hz        float64         `json:"hz"`
	Live      LiveConfig      `json:"live"`
	Output    OutputConfig    `json:"output"`
	Viz       VizConfig       `json:"viz"`
	Dashboard DashboardConfig `json:"dashboard"`
	Log       LogConfig       `json:"log"`
}

// LoadConfig reads the JSON config from disk and applies environment
// overrides (NAVCON_LIVE_ADDR, NAVCON_OUTPUT_ADDR).
func LoadConfig(path string) (AppConfig, error) {
	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if addr := os.Getenv("NAVCON_LIVE_ADDR"); addr != "" {
		cfg.Live.UDPAddr = addr
	}
	if addr := os.Getenv("NAVCON_OUTPUT_ADDR"); addr != "" {
		cfg.Output.UDPAddr = addr
	}
	return cfg, nil
}
