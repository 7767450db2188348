package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/talign/pkg/runner"
)

// writeTree creates the given files (path -> content) under a temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscover_DirectoryWalk(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"a.txt":          "a",
		"b.text":         "b",
		"notes.md":       "skipped extension",
		"sub/c.txt":      "c",
		"sub/deep/d.txt": "d",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "b.text", "sub/c.txt", "sub/deep/d.txt"},
		relPaths(t, dir, files))
}

func TestDiscover_ExplicitFileIgnoresExtensionFilter(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"readme.rst": "content"})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"readme.rst"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"readme.rst"}, relPaths(t, dir, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"keep.txt":         "k",
		"vendor/skip.txt":  "s",
		"logs/old/out.txt": "o",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "logs/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, relPaths(t, dir, files))
}

func TestDiscover_SkipsHidden(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"visible.txt":      "v",
		".hidden.txt":      "h",
		".cache/inner.txt": "i",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.txt"}, relPaths(t, dir, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"doc.rst": "r",
		"doc.txt": "t",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".rst"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc.rst"}, relPaths(t, dir, files))
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"no-such-file.txt"},
	})
	assert.Error(t, err)
}

func TestDiscover_Deduplicates(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"a.txt": "a"})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{".", "a.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, relPaths(t, dir, files))
}

func TestDiscover_SortedOutput(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"z.txt": "z",
		"a.txt": "a",
		"m.txt": "m",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "m.txt", "z.txt"}, relPaths(t, dir, files))
}
