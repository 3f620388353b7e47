package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.chatvault/config.toml.
type Config struct {
	DefaultSession string  `toml:"default_session"`
	Capture        Capture `toml:"capture"`
	Export         Export  `toml:"export"`
}

// Capture configures the cvcap proxy.
type Capture struct {
	// Listen is the local address the proxy binds.
	Listen string `toml:"listen"`
	// Upstream is the base URL of the chat API the proxy fronts.
	Upstream string `toml:"upstream"`
}

// Export configures the CSV exporter.
type Export struct {
	// Prefix is the archive filename prefix (<prefix>_<millis>.csv).
	Prefix string `toml:"prefix"`
}

// Default returns the config used when no file exists yet.
func Default() *Config {
	return &Config{
		DefaultSession: "main",
		Capture: Capture{
			Listen:   "127.0.0.1:8464",
			Upstream: "https://api.groupme.com",
		},
		Export: Export{
			Prefix: "chatvault",
		},
	}
}

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Export.Prefix == "" {
		cfg.Export.Prefix = "chatvault"
	}
	return &cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
