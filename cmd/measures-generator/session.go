package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"measures-generator/internal/analyze"
	"measures-generator/internal/config"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/logger"
	"measures-generator/internal/pipeline"
)

// exitError ends the process with code and prints nothing.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitCode(err error) (int, bool) {
	var e exitError
	if errors.As(err, &e) {
		return e.code, true
	}

	return 0, false
}

// session is the configuration of one command after flags were applied
// over measures.toml.
type session struct {
	cfg config.Config
	dir string
	log *slog.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Root().PersistentFlags()

	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	var cfg config.Config

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(dir)
	}

	if err != nil {
		return nil, err
	}

	if err := applyFlags(cmd, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logCfg, err := cfg.LoggerConfig()
	if err != nil {
		return nil, err
	}

	logger.Init(logCfg)

	mode, err := flags.GetString("color")
	if err != nil {
		return nil, err
	}

	if err := applyColor(mode); err != nil {
		return nil, err
	}

	s := &session{
		cfg: cfg,
		dir: dir,
		log: logger.ForComponent("cli"),
	}

	if cfg.Path != "" {
		s.log.Debug("configuration loaded", "path", cfg.Path)
	}

	return s, nil
}

// applyFlags overrides cfg with the persistent flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Root().PersistentFlags()

	if flags.Changed("jobs") {
		jobs, err := flags.GetInt("jobs")
		if err != nil {
			return err
		}

		cfg.Generator.Jobs = jobs
	}

	if flags.Changed("max-diagnostics") {
		limit, err := flags.GetInt("max-diagnostics")
		if err != nil {
			return err
		}

		if limit >= 0 {
			cfg.Generator.MaxDiagnostics = limit
		}
	}

	if flags.Changed("log-level") {
		level, err := flags.GetString("log-level")
		if err != nil {
			return err
		}

		cfg.Log.Level = level
	}

	return nil
}

func applyColor(mode string) error {
	switch mode {
	case "auto":
		// color detects terminals on its own
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode %q (must be auto, on or off)", mode)
	}

	return nil
}

// analysis is the outcome of loading and resolving packages.
type analysis struct {
	program *analyze.Program
	result  *pipeline.Result
	diags   diagnostic.Diagnostics
}

// analyzePatterns loads patterns (or the configured ones) and runs the
// pipeline over every annotated declaration.
func (s *session) analyzePatterns(ctx context.Context, patterns []string) (*analysis, error) {
	a := analyze.NewAnalyzer()
	a.Dir = s.dir

	// configured patterns are relative to the configuration file
	if len(patterns) == 0 {
		patterns = s.cfg.Generator.Patterns
		if s.cfg.Path != "" {
			a.Dir = filepath.Dir(s.cfg.Path)
		}
	}

	s.log.Debug("loading packages", "patterns", patterns)

	prog, err := a.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	res, err := pipeline.Run(ctx, prog.Declarations, pipeline.Options{
		Jobs:   s.cfg.Generator.Jobs,
		Policy: s.cfg.ResolvePolicy(),
		Logger: s.log,
	})
	if err != nil {
		return nil, err
	}

	var diags diagnostic.Diagnostics
	diags.Merge(prog.Diagnostics)
	diags.Merge(res.Diagnostics)

	return &analysis{
		program: prog,
		result:  res,
		diags:   diags.Dedup().Sorted(),
	}, nil
}
