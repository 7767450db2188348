// Package config defines core configuration types for talign.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"errors"
	"fmt"
)

// Alignment selects the rendering policy for the whole run.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// IsValid returns true if the alignment token is one of the known policies.
func (a Alignment) IsValid() bool {
	switch a {
	case AlignLeft, AlignRight, AlignJustify:
		return true
	default:
		return false
	}
}

// Validation sentinel errors.
var (
	// ErrInvalidWidth indicates a non-positive maximum width.
	ErrInvalidWidth = errors.New("width must be positive")

	// ErrInvalidAlignment indicates an unknown alignment token.
	ErrInvalidAlignment = errors.New("invalid alignment")
)

// Config is the root configuration structure for talign.
type Config struct {
	// Width is the maximum rendered line width in characters.
	Width int `yaml:"width"`

	// Align is the alignment policy: "left", "right", or "justify".
	Align Alignment `yaml:"align"`

	// Extensions is the set of file extensions considered plain text
	// when formatting directories.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Backup creates a sidecar backup before rewriting a file in place.
	Backup bool `yaml:"backup"`

	// CLI-level options (not persisted to config files).

	// Output is the destination file path. Empty means stdout.
	Output string `yaml:"-"`

	// Write rewrites source files in place instead of printing.
	Write bool `yaml:"-"`

	// Jobs is the number of parallel workers. 0 means use GOMAXPROCS.
	Jobs int `yaml:"-"`

	// Summary enables the styled run summary after formatting.
	Summary bool `yaml:"-"`
}

// DefaultWidth is the fallback maximum line width when neither the flags,
// the config file, nor the terminal provide one.
const DefaultWidth = 80

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Align:      AlignLeft,
		Extensions: DefaultExtensions(),
	}
}

// DefaultExtensions returns the default set of plain-text file extensions.
func DefaultExtensions() []string {
	return []string{".txt", ".text"}
}

// Validate checks that the configuration can drive a run. A non-positive
// width or an unknown alignment token is an invalid configuration and is
// rejected before any processing starts.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, c.Width)
	}
	if !c.Align.IsValid() {
		return fmt.Errorf("%w: %q (expected left, right, or justify)", ErrInvalidAlignment, c.Align)
	}
	return nil
}
