package config

import (
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every option with explanatory comments.
	// If false, a minimal template is generated.
	Full bool
}

// GenerateTemplate creates a .talign.yml starter template reflecting the
// default configuration.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	defaults := NewConfig()

	var b strings.Builder
	b.WriteString("# talign configuration\n")
	b.WriteString("# See 'talign format --help' for flag equivalents.\n\n")

	if opts.Full {
		b.WriteString("# Maximum rendered line width in characters. Must be positive.\n")
	}
	fmt.Fprintf(&b, "width: %d\n", defaults.Width)

	if opts.Full {
		b.WriteString("\n# Alignment policy: left, right, or justify.\n")
	}
	fmt.Fprintf(&b, "align: %s\n", defaults.Align)

	if opts.Full {
		b.WriteString("\n# File extensions treated as plain text when formatting directories.\n")
	}
	b.WriteString("extensions:\n")
	for _, ext := range defaults.Extensions {
		fmt.Fprintf(&b, "  - %s\n", ext)
	}

	if opts.Full {
		b.WriteString("\n# Glob patterns for files and directories to skip.\n")
		b.WriteString("# Supports ** for recursive matching, e.g. vendor/**.\n")
		b.WriteString("ignore: []\n")
		b.WriteString("\n# Create .talign.bak backups before rewriting files in place.\n")
		fmt.Fprintf(&b, "backup: %t\n", defaults.Backup)
	}

	return []byte(b.String()), nil
}
