package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string       `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Presentation Presentation `yaml:"presentation"`
}

type Presentation struct {
	NoColor  PresenceFlag `yaml:"no-color" env:"NO_COLOR"`
	HideHelp bool         `yaml:"hide-help" env:"TICTACTOE_HIDE_HELP" env-default:"false"`
}

// PresenceFlag follows the NO_COLOR convention: any non-empty value turns it on,
// an empty value leaves it off.
type PresenceFlag bool

// SetValue implements cleanenv.Setter.
func (that *PresenceFlag) SetValue(value string) error {
	*that = value != ""
	return nil
}

// Load reads the YAML file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// SlogLevel maps log-level to a slog level; unknown values fall back to info.
func (that *Config) SlogLevel() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
