package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocut/internal/cli"
	"github.com/yaklabco/gocut/pkg/extract"
	"github.com/yaklabco/gocut/pkg/position"
	"github.com/yaklabco/gocut/pkg/runner"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "none", Date: "unknown"}
}

// newTestCommand builds a root command wired to buffers, isolated from the
// developer's real config files.
func newTestCommand(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GOCUT_DELIM", "")
	t.Setenv("GOCUT_JOBS", "")
	t.Setenv("GOCUT_STATS", "")

	cmd := cli.NewRootCommand(testBuildInfo())
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd, stdout, stderr
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand_Metadata(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	assert.Equal(t, "gocut [flags] [FILE...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}

func TestRootCommand_HasExpectedFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for name, shorthand := range map[string]string{
		"fields": "f",
		"bytes":  "b",
		"chars":  "c",
		"delim":  "d",
	} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag --%s should exist", name)
		assert.Equal(t, shorthand, flag.Shorthand)
	}

	for _, name := range []string{"jobs", "stats"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s should exist", name)
	}

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name),
			"persistent flag --%s should exist", name)
	}
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "version")
	assert.Contains(t, names, "init")
}

func TestRootCommand_SelectionModesAreMutuallyExclusive(t *testing.T) {
	cmd, _, _ := newTestCommand(t)
	cmd.SetArgs([]string{"-f", "1", "-b", "2"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fields")
	assert.Contains(t, err.Error(), "bytes")
}

func TestRootCommand_RequiresSelectionMode(t *testing.T) {
	input := writeTempFile(t, "input.txt", "hello\n")

	cmd, _, _ := newTestCommand(t)
	cmd.SetArgs([]string{input})

	err := cmd.Execute()

	require.Error(t, err)
	assert.EqualError(t, err, "must have --fields, --bytes, or --chars")
}

func TestRootCommand_CutsFields(t *testing.T) {
	input := writeTempFile(t, "books.csv", "Author,Year,Title\nÉmile Zola,1865,La Confession de Claude\n")

	cmd, stdout, _ := newTestCommand(t)
	cmd.SetArgs([]string{"-f", "1,3", "-d", ",", input})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Author,Title\nÉmile Zola,La Confession de Claude\n", stdout.String())
}

func TestRootCommand_CutsChars(t *testing.T) {
	input := writeTempFile(t, "input.txt", "ábcdef\n")

	cmd, stdout, _ := newTestCommand(t)
	cmd.SetArgs([]string{"-c", "1-3", input})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "ábc\n", stdout.String())
}

func TestRootCommand_CutsBytes(t *testing.T) {
	input := writeTempFile(t, "input.txt", "ábc\n")

	cmd, stdout, _ := newTestCommand(t)
	cmd.SetArgs([]string{"-b", "1-2", input})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "á\n", stdout.String())
}

func TestRootCommand_PositionErrorsSurfaceVerbatim(t *testing.T) {
	input := writeTempFile(t, "input.txt", "hello\n")

	tests := []struct {
		name    string
		spec    string
		wantErr string
	}{
		{name: "zero position", spec: "0", wantErr: `illegal list value: "0"`},
		{name: "plus prefix", spec: "+1", wantErr: `illegal list value: "+1"`},
		{name: "inverted range", spec: "3-1",
			wantErr: "First number in range (3) must be lower than second number (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCommand(t)
			cmd.SetArgs([]string{"-f", tt.spec, input})

			err := cmd.Execute()

			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRootCommand_RejectsMultiByteDelimiter(t *testing.T) {
	input := writeTempFile(t, "input.txt", "a,b\n")

	cmd, _, _ := newTestCommand(t)
	cmd.SetArgs([]string{"-f", "1", "-d", "é", input})

	err := cmd.Execute()

	require.Error(t, err)
	assert.EqualError(t, err, `--delim "é" must be a single byte`)
}

func TestRootCommand_MissingFileReturnsFileFailures(t *testing.T) {
	good := writeTempFile(t, "good.txt", "keep\n")

	cmd, stdout, _ := newTestCommand(t)
	cmd.SetArgs([]string{"-c", "1-4", good, filepath.Join(t.TempDir(), "missing.txt")})

	err := cmd.Execute()

	require.ErrorIs(t, err, cli.ErrFileFailures)
	assert.Equal(t, "keep\n", stdout.String(), "good files still produce output")
}

func TestRootCommand_StatsSummaryGoesToStderr(t *testing.T) {
	input := writeTempFile(t, "input.txt", "one\ntwo\n")

	cmd, stdout, stderr := newTestCommand(t)
	cmd.SetArgs([]string{"-c", "1", "--stats", input})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "o\nt\n", stdout.String())
	// Piped stderr gets the one-line summary form.
	assert.Equal(t, "2 lines cut from 1 file\n", stderr.String())
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".gocut.yml")

	cmd, _, _ := newTestCommand(t)
	cmd.SetArgs([]string{"init", "--output", target})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# gocut configuration.")
	assert.Contains(t, string(content), "delimiter:")
}

func TestInitCommand_RefusesToOverwriteWithoutForce(t *testing.T) {
	target := writeTempFile(t, ".gocut.yml", "delimiter: \",\"\n")

	cmd, _, _ := newTestCommand(t)
	cmd.SetArgs([]string{"init", "--output", target})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cmd, _, _ = newTestCommand(t)
	cmd.SetArgs([]string{"init", "--output", target, "--force"})
	require.NoError(t, cmd.Execute())
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   int
	}{
		{name: "nil result", result: nil, want: cli.ExitSuccess},
		{name: "clean run", result: &runner.Result{}, want: cli.ExitSuccess},
		{
			name:   "file errors",
			result: &runner.Result{Stats: runner.Stats{FilesErrored: 1}},
			want:   cli.ExitIOError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result))
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "file failures", err: cli.ErrFileFailures, want: cli.ExitIOError},
		{name: "no selection", err: extract.ErrNoSelection, want: cli.ExitInvalidUsage},
		{name: "empty list", err: position.ErrEmptyList, want: cli.ExitInvalidUsage},
		{
			name: "illegal value",
			err:  &position.IllegalValueError{Value: "0"},
			want: cli.ExitInvalidUsage,
		},
		{
			name: "inverted range",
			err:  &position.InvertedRangeError{First: 3, Second: 1},
			want: cli.ExitInvalidUsage,
		},
		{name: "anything else", err: errors.New("boom"), want: cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeForError(tt.err))
		})
	}
}
