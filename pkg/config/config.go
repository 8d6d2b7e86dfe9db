package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the current version of the user config format.
const CurrentVersion = "v1"

// Config is the user-global configuration read from config.yaml: default
// workspace and model choices, plus a verbosity setting. The CLI takes its
// log level from the -v/-q/--debug flags only; Verbosity is stored and
// listed but not applied to logging.
type Config struct {
	mu sync.Mutex

	Version          string `yaml:"version,omitempty"`
	DefaultWorkspace string `yaml:"default_workspace,omitempty"`
	ChatModel        string `yaml:"chat_model,omitempty"`
	EmbeddingModel   string `yaml:"embedding_model,omitempty"`
	Verbosity        string `yaml:"verbosity,omitempty"`
}

// Load reads the user config file, returning an empty Config if it
// doesn't exist yet.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c.Version = CurrentVersion
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ErrUnknownKey is returned by Get/Set for a key not in the known set.
var ErrUnknownKey = fmt.Errorf("unknown config key")

// Get reads a single setting by its key name, matching the keys
// config.yaml itself uses.
func (c *Config) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case "default_workspace":
		return c.DefaultWorkspace, nil
	case "chat_model":
		return c.ChatModel, nil
	case "embedding_model":
		return c.EmbeddingModel, nil
	case "verbosity":
		return c.Verbosity, nil
	default:
		return "", fmt.Errorf("%s: %w", key, ErrUnknownKey)
	}
}

// Set updates a single setting by key. Callers still need to call Save
// for the change to persist.
func (c *Config) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case "default_workspace":
		c.DefaultWorkspace = value
	case "chat_model":
		c.ChatModel = value
	case "embedding_model":
		c.EmbeddingModel = value
	case "verbosity":
		c.Verbosity = value
	default:
		return fmt.Errorf("%s: %w", key, ErrUnknownKey)
	}
	return nil
}

// List returns every known key/value pair as a map, so iteration order is
// not defined; callers that print it sort the keys themselves.
func (c *Config) List() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]string{
		"default_workspace": c.DefaultWorkspace,
		"chat_model":        c.ChatModel,
		"embedding_model":   c.EmbeddingModel,
		"verbosity":         c.Verbosity,
	}
}
