package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModePvP        = "pvp"
	ModeEasy       = "easy"
	ModeImpossible = "impossible"
	ModeArena      = "arena"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Mode           string `yaml:"mode" env:"MODE" env-default:"" validate:"omitempty,oneof=pvp easy impossible arena"`
	AIMark         string `yaml:"ai-mark" env:"AI_MARK" env-default:"O" validate:"oneof=X O"`
	ParallelSearch bool   `yaml:"parallel-search" env:"PARALLEL_SEARCH" env-default:"false"`
	Color          bool   `yaml:"color" env:"COLOR" env-default:"true"`
	Arena          Arena  `yaml:"arena"`
}

type Arena struct {
	Games      int    `yaml:"games" env:"ARENA_GAMES" env-default:"100" validate:"gt=0"`
	Seed       uint64 `yaml:"seed" env:"ARENA_SEED" env-default:"0"`
	Difficulty string `yaml:"difficulty" env:"ARENA_DIFFICULTY" env-default:"impossible" validate:"oneof=easy impossible"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load - reads the yaml file at path when it exists, environment variables otherwise,
// and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
