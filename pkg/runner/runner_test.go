package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/talign/pkg/config"
	"github.com/yaklabco/talign/pkg/fsutil"
	"github.com/yaklabco/talign/pkg/runner"
)

func testConfig(width int, mode config.Alignment) *config.Config {
	cfg := config.NewConfig()
	cfg.Width = width
	cfg.Align = mode
	return cfg
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     testConfig(20, config.AlignLeft),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}

func TestRunner_Run_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"a.txt": "hello world"})

	_, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     testConfig(0, config.AlignLeft),
	})
	assert.ErrorIs(t, err, config.ErrInvalidWidth)

	// Invalid config must fail before any file is read or rewritten.
	content, readErr := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "hello world", string(content))
}

func TestRunner_Run_CollectsLines(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"doc.txt": "the quick brown fox jumps",
	})

	result, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     testConfig(11, config.AlignRight),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, []string{"  the quick", "  brown fox", "      jumps"}, result.Files[0].Lines)
	assert.Equal(t, 5, result.Files[0].Words)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 3, result.Stats.LinesEmitted)
	assert.Equal(t, 5, result.Stats.WordsTotal)
	assert.False(t, result.Files[0].Written)
}

func TestRunner_Run_WriteInPlace(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"doc.txt": "the quick brown fox jumps",
	})
	cfg := testConfig(11, config.AlignLeft)
	cfg.Write = true

	result, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].Written)
	assert.Equal(t, 1, result.Stats.FilesModified)

	content, err := os.ReadFile(filepath.Join(dir, "doc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "the quick  \nbrown fox  \njumps      \n", string(content))
}

func TestRunner_Run_WriteUnchanged(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"done.txt": "already ok \n",
	})
	cfg := testConfig(11, config.AlignLeft)
	cfg.Write = true

	result, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.False(t, result.Files[0].Written)
	assert.True(t, result.Files[0].Unchanged)
	assert.Equal(t, 1, result.Stats.FilesUnchanged)
	assert.Equal(t, 0, result.Stats.FilesModified)
}

func TestRunner_Run_WriteWithBackup(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"doc.txt": "one two three four",
	})
	cfg := testConfig(9, config.AlignLeft)
	cfg.Write = true
	cfg.Backup = true

	_, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	backup, err := os.ReadFile(fsutil.BackupPath(filepath.Join(dir, "doc.txt")))
	require.NoError(t, err)
	assert.Equal(t, "one two three four", string(backup))
}

func TestRunner_Run_ManyFilesDeterministicOrder(t *testing.T) {
	t.Parallel()

	files := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files[name+".txt"] = "word " + name
	}
	dir := writeTree(t, files)

	result, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       4,
		Config:     testConfig(20, config.AlignLeft),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 8)
	var got []string
	for _, outcome := range result.Files {
		got = append(got, outcome.Path)
	}
	assert.IsIncreasing(t, got, "outcomes must follow sorted discovery order")
	assert.Equal(t, 8, result.Stats.FilesProcessed)
	assert.Equal(t, 16, result.Stats.WordsTotal)
}

func TestRunner_Run_MissingExplicitPath(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"good.txt": "fine text",
	})

	result, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"good.txt", "no-such-input.txt"},
		Config:     testConfig(20, config.AlignLeft),
	})
	// A missing explicit path fails discovery before any formatting.
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRunner_Run_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"empty.txt": ""})

	result, err := runner.New().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     testConfig(10, config.AlignJustify),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Empty(t, result.Files[0].Lines)
	assert.Equal(t, 0, result.Stats.LinesEmitted)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"a.txt": "text"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.New().Run(ctx, runner.Options{
		WorkingDir: dir,
		Config:     testConfig(10, config.AlignLeft),
	})
	assert.Error(t, err)
}

func TestJoinLines(t *testing.T) {
	t.Parallel()

	assert.Empty(t, runner.JoinLines(nil))
	assert.Equal(t, "one\n", runner.JoinLines([]string{"one"}))
	assert.Equal(t, "a\nb\n", runner.JoinLines([]string{"a", "b"}))
}
