package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

// Config is the tool configuration, assembled from built-in defaults,
// an optional ~/.timetrack/config.yaml, and TIMETRACK_* environment
// variables, in that order of precedence.
type Config struct {
	// DataFile overrides the event log location. Empty selects the
	// default file in the home directory.
	DataFile string `koanf:"data_file"`
	// LogLevel is a logrus level name for diagnostic output.
	LogLevel string `koanf:"log_level"`
}

const envPrefix = "TIMETRACK_"

// DefaultPath returns the config file location (~/.timetrack/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".timetrack", "config.yaml"), nil
}

// Load assembles the configuration. A missing config file is not an
// error; a present but invalid one is.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	err := k.Load(structs.Provider(Config{
		DataFile: "",
		LogLevel: "warning",
	}, "koanf"), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading config defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no config file at %s, using defaults and environment", path)
		} else {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else {
		log.Debugf("loaded configuration from %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading config from environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}
