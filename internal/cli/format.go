package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/talign/internal/configloader"
	"github.com/yaklabco/talign/internal/logging"
	"github.com/yaklabco/talign/internal/ui/pretty"
	"github.com/yaklabco/talign/pkg/align"
	"github.com/yaklabco/talign/pkg/config"
	"github.com/yaklabco/talign/pkg/fsutil"
	"github.com/yaklabco/talign/pkg/runner"
)

type formatFlags struct {
	width      int
	align      string
	output     string
	write      bool
	backup     bool
	jobs       int
	ignore     []string
	extensions []string
	summary    bool
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Reformat text to a fixed line width",
		Long:  formatLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.width, "width", "w", 0,
		"maximum line width (0 = detect from terminal)")
	cmd.Flags().StringVarP(&flags.align, "align", "a", "",
		"alignment policy: left, right, justify")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to file instead of stdout")
	cmd.Flags().BoolVar(&flags.write, "write", false, "rewrite source files in place")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "create backups before rewriting in place")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil,
		"file extensions treated as text when formatting directories")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a run summary")

	return cmd
}

const formatLongDescription = `Reformat plain text into lines of a bounded maximum width.

Words are wrapped greedily and each line is aligned left, right, or
justified. With no paths (or with "-"), text is read from stdin and the
result goes to stdout. With file or directory paths, each file is
formatted independently; --write rewrites the sources in place.

Examples:
  talign format < notes.txt            # stdin to stdout
  talign format -w 60 -a justify -     # justify stdin at width 60
  talign format notes.txt -o out.txt   # format a file to a new file
  talign format docs/ --write          # rewrite all text files in docs/
  talign format --write --backup .     # rewrite with .talign.bak backups`

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	// CLI flags outrank every other source, but only when explicitly set.
	applyFormatFlags(cmd, flags, cfg)

	if cfg.Width == 0 {
		cfg.Width = detectWidth()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Debug("configuration resolved",
		logging.FieldWidth, cfg.Width,
		logging.FieldAlign, cfg.Align,
		logging.FieldWrite, cfg.Write,
		logging.FieldJobs, cfg.Jobs,
	)

	if isStdinRun(args, cfg.Write) {
		return formatStdin(cmd, cfg)
	}

	return formatPaths(cmd, args, cfg, workDir)
}

// applyFormatFlags overlays explicitly-set CLI flags onto the loaded
// configuration.
func applyFormatFlags(cmd *cobra.Command, flags *formatFlags, cfg *config.Config) {
	if cmd.Flags().Changed("width") {
		cfg.Width = flags.width
	}
	if cmd.Flags().Changed("align") {
		cfg.Align = config.Alignment(strings.ToLower(flags.align))
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extensions = flags.extensions
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backup = flags.backup
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	cfg.Output = flags.output
	cfg.Write = flags.write
	cfg.Jobs = flags.jobs
	cfg.Summary = flags.summary
}

// isStdinRun reports whether this invocation reads from stdin: no paths
// given, or the single pseudo-path "-".
func isStdinRun(args []string, write bool) bool {
	if len(args) == 1 && args[0] == "-" {
		return true
	}
	return len(args) == 0 && !write
}

// detectWidth returns the terminal width when stdout is a terminal,
// falling back to the default.
func detectWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return config.DefaultWidth
}

func formatStdin(cmd *cobra.Command, cfg *config.Config) error {
	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	mode, err := align.ParseMode(string(cfg.Align))
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidAlignment, err)
	}

	lines, err := align.Render(string(input), cfg.Width, mode)
	if err != nil {
		return err
	}

	return emit(cmd, cfg.Output, runner.JoinLines(lines))
}

func formatPaths(cmd *cobra.Command, args []string, cfg *config.Config, workDir string) error {
	logger := logging.Default()
	ctx := cmd.Context()

	result, err := runner.New().Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return err
	}

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("format failed",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
		}
	}

	if !cfg.Write {
		var doc strings.Builder
		for _, outcome := range result.Files {
			if outcome.Error != nil {
				continue
			}
			doc.WriteString(runner.JoinLines(outcome.Lines))
		}
		if err := emit(cmd, cfg.Output, doc.String()); err != nil {
			return err
		}
	}

	printSummary(cmd, cfg, result)

	if result.HasErrors() {
		return ErrFilesFailed
	}
	return nil
}

// emit writes the rendered document to the destination file, or to stdout
// when no destination is set.
func emit(cmd *cobra.Command, output, doc string) error {
	if output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), doc)
		return err
	}

	ctx := cmd.Context()
	if err := fsutil.WriteAtomic(ctx, output, []byte(doc), fsutil.DefaultFileMode); err != nil {
		return err
	}
	logging.Default().Info("wrote output", logging.FieldOutput, output)
	return nil
}

// printSummary writes the run summary to stderr so it never mixes with
// formatted output on stdout.
func printSummary(cmd *cobra.Command, cfg *config.Config, result *runner.Result) {
	if !cfg.Summary && !cfg.Write {
		return
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	errOut := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, errOut))

	if cfg.Summary {
		fmt.Fprint(errOut, styles.FormatSummary(result.Stats))
		return
	}
	fmt.Fprint(errOut, styles.FormatSummaryOneLine(result.Stats))
}
