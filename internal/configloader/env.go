package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/talign/pkg/config"
)

// envVarPrefix is the prefix for all talign environment variables.
const envVarPrefix = "TALIGN_"

// LoadFromEnv applies TALIGN_* environment variable overrides to the
// configuration. Recognized variables: TALIGN_WIDTH, TALIGN_ALIGN,
// TALIGN_EXTENSIONS, TALIGN_IGNORE (comma-separated), TALIGN_BACKUP.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "WIDTH"); value != "" {
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %sWIDTH: %q", envVarPrefix, value)
		}
		cfg.Width = width
	}

	if value := os.Getenv(envVarPrefix + "ALIGN"); value != "" {
		cfg.Align = config.Alignment(strings.ToLower(value))
	}

	if value := os.Getenv(envVarPrefix + "EXTENSIONS"); value != "" {
		cfg.Extensions = splitList(value)
	}

	if value := os.Getenv(envVarPrefix + "IGNORE"); value != "" {
		cfg.Ignore = append(cfg.Ignore, splitList(value)...)
	}

	if value := os.Getenv(envVarPrefix + "BACKUP"); value != "" {
		backup, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sBACKUP: %q (expected true/false/1/0)", envVarPrefix, value)
		}
		cfg.Backup = backup
	}

	return nil
}

// splitList splits a comma-separated environment value, trimming whitespace
// and dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
