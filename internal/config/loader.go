package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EnvConfigPath names the variable that points at the YAML file.
	EnvConfigPath     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load reads the configuration file named by CONFIG_PATH (or ./config.yaml
// when unset) and applies environment overrides on top.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	return LoadFile(path, path != "")
}

// LoadFile reads path, then ENV, then env-default tags, in decreasing
// priority. A missing file is an error only when required is set; otherwise
// the config is built from ENV and defaults. The result is validated.
func LoadFile(path string, required bool) (*Config, error) {
	if path == "" {
		path = defaultConfigPath
	}

	var cfg Config
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
