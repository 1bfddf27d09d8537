package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

// Defaults for the streaming core. The per-read timeout bounds how long a
// stream worker waits for the next line, the render interval bounds display
// latency, and the queue capacity bounds memory under log bursts.
const (
	DefaultLogRetrievalTimeout = 100 * time.Millisecond
	DefaultRenderInterval      = 10 * time.Millisecond
	DefaultQueueCapacity       = 1000
	DefaultTailLines           = 300

	defaultConfigPath = "~/.config/logdeck/config.yaml"
)

// Config holds the values consumed by the streaming core. Flag parsing lives
// in main; this package only knows defaults, the optional config file, and
// validation.
type Config struct {
	Context         string   `json:"context"`
	Namespace       string   `json:"namespace"`
	PodQuery        string   `json:"podQuery"`
	ContainerStates []string `json:"containerStates"`

	LogRetrievalTimeoutMillis int `json:"logRetrievalTimeoutMillis"`
	RenderIntervalMillis      int `json:"renderIntervalMillis"`
	QueueCapacity             int `json:"queueCapacity"`
	TailLines                 int `json:"tailLines"`
}

// Default returns a Config with every tunable at its default.
func Default() Config {
	return Config{
		ContainerStates:           []string{"all"},
		LogRetrievalTimeoutMillis: int(DefaultLogRetrievalTimeout / time.Millisecond),
		RenderIntervalMillis:      int(DefaultRenderInterval / time.Millisecond),
		QueueCapacity:             DefaultQueueCapacity,
		TailLines:                 DefaultTailLines,
	}
}

// Load reads the optional YAML config file and overlays it on Default.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if len(cfg.ContainerStates) == 0 {
		cfg.ContainerStates = []string{"all"}
	}
	return cfg, nil
}

// Validate reports the first invalid tunable.
func (c Config) Validate() error {
	if c.LogRetrievalTimeoutMillis <= 0 {
		return fmt.Errorf("log retrieval timeout must be positive, got %dms", c.LogRetrievalTimeoutMillis)
	}
	if c.RenderIntervalMillis <= 0 {
		return fmt.Errorf("render interval must be positive, got %dms", c.RenderIntervalMillis)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity must be positive, got %d", c.QueueCapacity)
	}
	if c.TailLines <= 0 {
		return fmt.Errorf("tail lines must be positive, got %d", c.TailLines)
	}
	for _, s := range c.ContainerStates {
		switch s {
		case "all", "running", "terminated", "waiting":
		default:
			return fmt.Errorf("unknown container state %q (want all, running, terminated or waiting)", s)
		}
	}
	return nil
}

// LogRetrievalTimeout returns the per-read timeout as a duration.
func (c Config) LogRetrievalTimeout() time.Duration {
	return time.Duration(c.LogRetrievalTimeoutMillis) * time.Millisecond
}

// RenderInterval returns the flow controller tick as a duration.
func (c Config) RenderInterval() time.Duration {
	return time.Duration(c.RenderIntervalMillis) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
