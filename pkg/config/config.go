// Package config handles configuration for statline. Settings are
// loaded from embedded TOML defaults, then an optional statline.toml
// or statline.yaml in a configuration directory, then STATLINE_*
// environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/statline/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved settings for the drawer and logging.
type Config struct {
	// TickInterval is the baseline delay between redraws.
	TickInterval time.Duration
	// ResizeDelay is the longer delay used while the terminal is
	// being actively resized.
	ResizeDelay time.Duration
	// Verbosity is the logging verbosity (0=warn .. 3=trace).
	Verbosity int
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load resolves the configuration. dir is where statline.toml or
// statline.yaml is looked for; an empty dir means the current
// directory. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file if one exists
	if dir == "" {
		dir = "."
	}
	for _, filename := range []string{"statline.toml", "statline.yaml"} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(filename, ".yaml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		break
	}

	// 3. Environment overrides. Double underscore separates levels so
	// keys like tick_interval keep their own underscore:
	// STATLINE_DRAW__TICK_INTERVAL -> draw.tick_interval
	if err := k.Load(env.Provider("STATLINE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "STATLINE_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		Verbosity: k.Int("logging.verbosity"),
	}

	var err error
	if cfg.TickInterval, err = parseInterval(k, "draw.tick_interval"); err != nil {
		return nil, err
	}
	if cfg.ResizeDelay, err = parseInterval(k, "draw.resize_delay"); err != nil {
		return nil, err
	}

	if cfg.Verbosity < 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "logging.verbosity must not be negative, got %d", cfg.Verbosity)
	}
	return cfg, nil
}

func parseInterval(k *koanf.Koanf, key string) (time.Duration, error) {
	raw := k.String(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigParse, "invalid duration for %s: %q", key, raw)
	}
	if d <= 0 {
		return 0, errors.Newf(errors.ErrConfigValid, "%s must be positive, got %s", key, d)
	}
	return d, nil
}
