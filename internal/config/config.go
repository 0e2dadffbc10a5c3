// Package config loads server settings from an optional YAML or TOML file,
// the environment, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Address           string        `yaml:"address" toml:"address" env:"TODO_HTTP_ADDRESS" env-default:":8080"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" toml:"read_header_timeout" env:"TODO_HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout" env:"TODO_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" toml:"max_body_bytes" env:"TODO_HTTP_MAX_BODY_BYTES" env-default:"1048576"`
}

type StoreConfig struct {
	Path     string `yaml:"path" toml:"path" env:"TODO_STORE_PATH" env-default:"data/todos.json"`
	Validate bool   `yaml:"validate" toml:"validate" env:"TODO_STORE_VALIDATE" env-default:"true"`
	// Memory keeps tasks in process memory instead of the file.
	Memory bool `yaml:"memory" toml:"memory" env:"TODO_STORE_MEMORY" env-default:"false"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level" env:"TODO_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" toml:"format" env:"TODO_LOG_FORMAT" env-default:"text"`
}

type Config struct {
	HTTP  HTTPConfig  `yaml:"http" toml:"http"`
	Store StoreConfig `yaml:"store" toml:"store"`
	Log   LogConfig   `yaml:"log" toml:"log"`
}

// Load reads path (YAML or TOML by extension) and then the environment.
// An empty or missing path falls back to the environment and defaults.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http.address is required")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("http.max_body_bytes must be positive")
	}
	if !c.Store.Memory && strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path is required")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format must be text, json or logfmt, got %q", c.Log.Format)
	}
	return nil
}
