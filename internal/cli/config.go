package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/anchorgraph/pkg/render"
)

const (
	configFile = "config.toml"

	// configEnv names a config file when --config is not given.
	configEnv = "ANCHORGRAPH_CONFIG"
)

// Config holds user defaults read from config.toml. Command-line flags
// override every value.
type Config struct {
	LogLevel string       `toml:"log_level"`
	Render   RenderConfig `toml:"render"`
	Cache    CacheConfig  `toml:"cache"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format   string `toml:"format"`
	Detailed bool   `toml:"detailed"`
	Chains   bool   `toml:"chains"`
}

// CacheConfig controls the render cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Render: RenderConfig{
			Format: render.FormatSVG,
			Chains: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     "168h",
		},
	}
}

// Level returns the configured log level.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// CacheTTL returns the lifetime of cached renders.
func (c Config) CacheTTL() (time.Duration, error) {
	return time.ParseDuration(c.Cache.TTL)
}

func (c Config) validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := render.ValidateFormat(c.Render.Format); err != nil {
		return fmt.Errorf("render.format: %w", err)
	}
	if ttl, err := c.CacheTTL(); err != nil || ttl < 0 {
		return fmt.Errorf("cache.ttl: invalid duration %q", c.Cache.TTL)
	}
	return nil
}

// LoadConfig reads the configuration at path on top of the defaults. An
// empty path falls back to $ANCHORGRAPH_CONFIG, then to the default
// location, which may be absent.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(configEnv)
	}
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return DefaultConfig(), fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// configDir returns the config directory using XDG standard (~/.config/anchorgraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
