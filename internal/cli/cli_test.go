package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/talign/pkg/align"
	"github.com/yaklabco/talign/pkg/config"
	"github.com/yaklabco/talign/pkg/fsutil"
)

// newTestRoot builds a root command with captured output, isolated from
// the host's config files and environment.
func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TALIGN_WIDTH", "")
	t.Setenv("TALIGN_ALIGN", "")
	t.Setenv("TALIGN_EXTENSIONS", "")
	t.Setenv("TALIGN_IGNORE", "")
	t.Setenv("TALIGN_BACKUP", "")

	cmd := NewRootCommand(BuildInfo{Version: "test", Commit: "abc", Date: "today"})
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	cmd, _, _ := newTestRoot(t)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "format")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "version")
}

func TestRootCommand_Help(t *testing.T) {
	cmd, out, _ := newTestRoot(t)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "talign")
	assert.Contains(t, out.String(), "Available Commands:")
	assert.Contains(t, out.String(), "format")
}

func TestFormatCommand_Help(t *testing.T) {
	cmd, out, _ := newTestRoot(t)
	cmd.SetArgs([]string{"format", "--help"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "--width")
	assert.Contains(t, out.String(), "--align")
	assert.Contains(t, out.String(), "--write")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid width", config.ErrInvalidWidth, ExitInvalidUsage},
		{"invalid alignment", config.ErrInvalidAlignment, ExitInvalidUsage},
		{"engine width", align.ErrInvalidWidth, ExitInvalidUsage},
		{"files failed", ErrFilesFailed, ExitIOError},
		{"not found", fsutil.ErrNotFound, ExitIOError},
		{"permission", fsutil.ErrPermissionDenied, ExitIOError},
		{"os not exist", os.ErrNotExist, ExitIOError},
		{"unknown", errors.New("boom"), ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestInitCommand_CreatesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cmd, _, _ := newTestRoot(t)
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(defaultConfigFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "width:")
	assert.Contains(t, string(data), "align:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(defaultConfigFileName, []byte("width: 40\n"), 0o644))

	cmd, _, _ := newTestRoot(t)
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(defaultConfigFileName, []byte("stale"), 0o644))

	cmd, _, _ := newTestRoot(t)
	cmd.SetArgs([]string{"init", "--force"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(defaultConfigFileName)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}
