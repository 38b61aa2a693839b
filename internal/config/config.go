// Package config reads measures.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"measures-generator/internal/logger"
	"measures-generator/internal/resolve"
)

// FileName is the name of the configuration file searched for.
const FileName = "measures.toml"

// Config is the content of measures.toml.
type Config struct {
	Generator Generator `toml:"generator"`
	Policy    Policy    `toml:"policy"`
	Log       Log       `toml:"log"`

	// Path is the file the configuration was read from; empty for the
	// defaults.
	Path string `toml:"-"`
}

// Generator configures a pipeline run.
type Generator struct {
	// Jobs bounds parallelism; zero means GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// MaxDiagnostics caps the printed diagnostics; zero means no cap.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Patterns are the package patterns loaded when none are given.
	Patterns []string `toml:"patterns"`
}

// Policy mirrors resolve.Policy.
type Policy struct {
	Inclusion string `toml:"inclusion"`
	Stacking  string `toml:"stacking"`
}

// Log configures the default logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	policy := resolve.DefaultPolicy()

	return Config{
		Generator: Generator{Patterns: []string{"./..."}},
		Policy: Policy{
			Inclusion: string(policy.Inclusion),
			Stacking:  string(policy.Stacking),
		},
		Log: Log{Level: "warn", Format: "text"},
	}
}

// Find searches startDir and its parents for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to resolve start directory")
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, errors.Wrapf(err, "failed to stat %q", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}

	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}

	return cfg, nil
}

// Discover loads the nearest FileName above startDir, or the defaults when
// there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}

	if !ok {
		return Default(), nil
	}

	return Load(path)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Generator.Jobs < 0 {
		return errors.Errorf("[generator].jobs must not be negative, got %d", c.Generator.Jobs)
	}

	if c.Generator.MaxDiagnostics < 0 {
		return errors.Errorf("[generator].max_diagnostics must not be negative, got %d", c.Generator.MaxDiagnostics)
	}

	if err := c.ResolvePolicy().Validate(); err != nil {
		return errors.Wrap(err, "[policy]")
	}

	if _, err := c.LoggerConfig(); err != nil {
		return errors.Wrap(err, "[log]")
	}

	return nil
}

// ResolvePolicy converts the [policy] section.
func (c Config) ResolvePolicy() resolve.Policy {
	return resolve.Policy{
		Inclusion: resolve.Inclusion(c.Policy.Inclusion),
		Stacking:  resolve.Stacking(c.Policy.Stacking),
	}
}

// LoggerConfig converts the [log] section.
func (c Config) LoggerConfig() (logger.Config, error) {
	cfg := logger.DefaultConfig()

	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return cfg, err
	}

	format, err := logger.ParseFormat(c.Log.Format)
	if err != nil {
		return cfg, err
	}

	cfg.Level = level
	cfg.Format = format

	return cfg, nil
}
