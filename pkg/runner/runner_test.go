package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocut/pkg/extract"
	"github.com/yaklabco/gocut/pkg/position"
	"github.com/yaklabco/gocut/pkg/runner"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mustParse(t *testing.T, spec string) position.PositionList {
	t.Helper()
	list, err := position.Parse(spec)
	require.NoError(t, err)
	return list
}

func TestRun_CharMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "hello\nworld\n")

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Files:     []string{path},
		Selection: extract.CharSelection(mustParse(t, "1-3")),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, []string{"hel", "wor"}, result.Files[0].Lines)
	assert.Equal(t, 2, result.Stats.LinesRead)
	assert.Equal(t, 2, result.Stats.LinesEmitted)
	assert.False(t, result.HasErrors())
}

func TestRun_ByteMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "ábc\n")

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Files:     []string{path},
		Selection: extract.ByteSelection(mustParse(t, "1")),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	// The first byte splits the two-byte á.
	assert.Equal(t, []string{"�"}, result.Files[0].Lines)
}

func TestRun_FieldMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "in.tsv", "Captain\tSham\t12345\nBaudelaire\tViolet\t67890\n")

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Files:     []string{path},
		Selection: extract.FieldSelection(mustParse(t, "1,3")),
		Delimiter: '\t',
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, []string{"Captain\t12345", "Baudelaire\t67890"}, result.Files[0].Lines)
}

func TestRun_FieldModeOutOfRange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "in.csv", "a,b\n")

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Files:     []string{path},
		Selection: extract.FieldSelection(mustParse(t, "1,4")),
		Delimiter: ',',
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, result.Files[0].Lines)
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Selection: extract.CharSelection(mustParse(t, "1")),
		Stdin:     strings.NewReader("abc\ndef\n"),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, runner.StdinName, result.Files[0].Path)
	assert.Equal(t, []string{"a", "d"}, result.Files[0].Lines)
}

func TestRun_MissingFileDoesNotAbort(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "abc\n")
	missing := filepath.Join(dir, "missing.txt")

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Files:     []string{missing, good},
		Selection: extract.CharSelection(mustParse(t, "1")),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Error(t, result.Files[0].Err)
	assert.NoError(t, result.Files[1].Err)
	assert.Equal(t, []string{"a"}, result.Files[1].Lines)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.True(t, result.HasErrors())
}

func TestRun_OrderIsDeterministicWithJobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		files = append(files, writeFile(t, dir, name+".txt", name+"1\n"+name+"2\n"))
	}

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Files:     files,
		Selection: extract.CharSelection(mustParse(t, "1-2")),
		Jobs:      4,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, len(files))
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, files[i], result.Files[i].Path)
		assert.Equal(t, []string{name + "1", name + "2"}, result.Files[i].Lines)
	}
}

func TestRun_NoSelection(t *testing.T) {
	t.Parallel()

	r := runner.New()
	_, err := r.Run(context.Background(), runner.Options{
		Stdin: strings.NewReader("abc\n"),
	})
	require.ErrorIs(t, err, extract.ErrNoSelection)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "abc\n")

	r := runner.New()
	_, err := r.Run(ctx, runner.Options{
		Files:     []string{path},
		Selection: extract.CharSelection(mustParse(t, "1")),
	})
	assert.Error(t, err)
}
