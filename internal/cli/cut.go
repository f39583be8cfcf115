package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocut/internal/configloader"
	"github.com/yaklabco/gocut/internal/logging"
	"github.com/yaklabco/gocut/internal/ui/pretty"
	"github.com/yaklabco/gocut/pkg/config"
	"github.com/yaklabco/gocut/pkg/extract"
	"github.com/yaklabco/gocut/pkg/position"
	"github.com/yaklabco/gocut/pkg/runner"
)

// ErrFileFailures is returned when one or more input files could not be
// processed. It signals the exit code; the failures themselves have already
// been logged.
var ErrFileFailures = errors.New("one or more input files failed")

type cutFlags struct {
	fields     string
	bytes      string
	chars      string
	delimiter  string
	jobs       int
	stats      bool
	configPath string
	color      string
}

func addCutFlags(cmd *cobra.Command, flags *cutFlags) {
	cmd.Flags().StringVarP(&flags.fields, "fields", "f", "", "selected fields, e.g. 1,3-5")
	cmd.Flags().StringVarP(&flags.bytes, "bytes", "b", "", "selected bytes, e.g. 1,3-5")
	cmd.Flags().StringVarP(&flags.chars, "chars", "c", "", "selected characters, e.g. 1,3-5")
	cmd.Flags().StringVarP(&flags.delimiter, "delim", "d", config.DefaultDelimiter,
		"field delimiter (single byte)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel file workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print a run summary to stderr")

	cmd.MarkFlagsMutuallyExclusive("fields", "bytes", "chars")
}

func runCut(cmd *cobra.Command, args []string, flags *cutFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Only flags the user actually set participate in the merge, so an
	// untouched --delim default does not clobber a config-file delimiter.
	cliCfg := &config.Config{
		Fields: flags.fields,
		Bytes:  flags.bytes,
		Chars:  flags.chars,
		Color:  flags.color,
		Jobs:   flags.jobs,
		Stats:  flags.stats,
	}
	if cmd.Flags().Changed("delim") {
		cliCfg.Delimiter = flags.delimiter
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	delimiter, err := cfg.DelimiterByte()
	if err != nil {
		return err
	}

	selection, err := buildSelection(cfg)
	if err != nil {
		return err
	}

	logger.Debug("configuration resolved",
		logging.FieldMode, selection.Mode.String(),
		logging.FieldPositions, selection.Positions.String(),
		logging.FieldDelimiter, cfg.Delimiter,
		logging.FieldJobs, cfg.Jobs,
	)

	cutRunner := runner.New()
	result, err := cutRunner.Run(logging.WithLogger(ctx, logger), runner.Options{
		Files:     args,
		Selection: selection,
		Delimiter: delimiter,
		Jobs:      cfg.Jobs,
	})
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, outcome := range result.Files {
		if outcome.Err != nil {
			logger.Error("cannot process file",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Err,
			)
			continue
		}
		for _, line := range outcome.Lines {
			fmt.Fprintln(out, line)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Stats {
		errWriter := cmd.ErrOrStderr()
		styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, errWriter))
		if pretty.IsTerminal(errWriter) {
			fmt.Fprint(errWriter, styles.FormatSummary(result.Stats, errWriter))
		} else {
			// Piped stderr gets the compact one-line form.
			fmt.Fprint(errWriter, styles.FormatSummaryOneLine(result.Stats))
		}
	}

	if result.HasErrors() {
		return ErrFileFailures
	}

	return nil
}

// buildSelection maps the mutually exclusive selection specs to a parsed
// Selection. The flag layer guarantees at most one spec is set; none at all
// is the caller's error.
func buildSelection(cfg *config.Config) (extract.Selection, error) {
	var (
		spec  string
		build func(position.PositionList) extract.Selection
	)

	switch {
	case cfg.Fields != "":
		spec, build = cfg.Fields, extract.FieldSelection
	case cfg.Bytes != "":
		spec, build = cfg.Bytes, extract.ByteSelection
	case cfg.Chars != "":
		spec, build = cfg.Chars, extract.CharSelection
	default:
		return extract.Selection{}, extract.ErrNoSelection
	}

	positions, err := position.Parse(spec)
	if err != nil {
		return extract.Selection{}, err
	}

	return build(positions), nil
}
