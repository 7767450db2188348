// Package configloader resolves the talign configuration by merging
// defaults, user and project config files, environment variables, and
// CLI flags (applied by the caller, which has flag-change information).
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/talign/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and a missing file
	// is an error rather than a silent fallback.
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading TALIGN_* environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// fileConfig is the overlay shape read from config files. Pointer fields
// distinguish "absent" from zero values during the merge.
type fileConfig struct {
	Width      *int     `yaml:"width"`
	Align      *string  `yaml:"align"`
	Extensions []string `yaml:"extensions"`
	Ignore     []string `yaml:"ignore"`
	Backup     *bool    `yaml:"backup"`
}

// apply overlays the file values onto cfg.
func (f *fileConfig) apply(cfg *config.Config) {
	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Align != nil {
		cfg.Align = config.Alignment(*f.Align)
	}
	if f.Extensions != nil {
		cfg.Extensions = f.Extensions
	}
	if f.Ignore != nil {
		cfg.Ignore = append(cfg.Ignore, f.Ignore...)
	}
	if f.Backup != nil {
		cfg.Backup = *f.Backup
	}
}

// Load resolves the configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (TALIGN_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.talign.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/talign/config.yaml)
//  5. Defaults
//
// CLI flags outrank everything; the cli package overlays them after Load
// since only it knows which flags were explicitly set.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	result := &LoadResult{}
	cfg := config.NewConfig()

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(workDir)
	if err != nil {
		return nil, fmt.Errorf("discover config paths: %w", err)
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := loadInto(paths.User, cfg, result); err != nil {
			return nil, err
		}
	}

	switch {
	case opts.ExplicitPath != "":
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		if err := loadInto(opts.ExplicitPath, cfg, result); err != nil {
			return nil, err
		}
	case !opts.IgnoreProjectConfig && paths.Project != "":
		if err := loadInto(paths.Project, cfg, result); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.Align.IsValid() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("unknown alignment %q in configuration, using %q", cfg.Align, config.AlignLeft))
		cfg.Align = config.AlignLeft
	}

	result.Config = cfg
	return result, nil
}

// loadInto parses the YAML file at path and overlays it onto cfg.
func loadInto(path string, cfg *config.Config, result *LoadResult) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	overlay := &fileConfig{}
	if err := yaml.Unmarshal(data, overlay); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay.apply(cfg)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}
