package cli

import (
	"errors"
	"os"

	"github.com/yaklabco/talign/pkg/align"
	"github.com/yaklabco/talign/pkg/config"
	"github.com/yaklabco/talign/pkg/fsutil"
)

// Exit codes for talign, following the BSD sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage or
	// configuration, such as a non-positive width or an unknown
	// alignment token.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates a file I/O error.
	ExitIOError = 74
)

// ErrFilesFailed signals that one or more files could not be formatted.
// Per-file errors are reported as they occur; this only carries the exit
// code back to main.
var ErrFilesFailed = errors.New("some files failed to format")

// ExitCodeFromError maps an error returned by command execution to a
// process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidWidth),
		errors.Is(err, config.ErrInvalidAlignment),
		errors.Is(err, align.ErrInvalidWidth):
		return ExitInvalidUsage
	case errors.Is(err, ErrFilesFailed),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
