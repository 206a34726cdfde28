// Organize Photos - copy camera photos into a year/month/day tree
//
// This tool reads a flat input directory, takes the capture date from each
// photo's filename and copies the photo into a dated directory hierarchy
// under the output directory:
//
//	IMG_20170112_0001.jpg  ->  {output}/2017/January/12/IMG_20170112_0001.jpg
//
// Features:
//   - Filename date recognition (IMG_YYYYMMDD_*.jpg, strict calendar check)
//   - Idempotent copies: directories and files are reused on re-runs
//   - File mode and timestamps carried over to the copy
//   - EXIF capture date cross-check (warning only)
//   - Per-file errors reported at the end; one bad file never stops the run
//
// Usage:
//
//	organize-photos --input-dir ~/Camera --output-dir ~/Photos
//
// The input directory is never modified.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"organize-photos/internal/config"
	"organize-photos/internal/console"
	"organize-photos/internal/logging"
	"organize-photos/internal/organizer"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

var _ organizer.Sink = (*console.Console)(nil)

// =============================================================================
// Command
// =============================================================================

// newRootCommand builds the organize-photos command over fs. Output goes to
// stdout and stderr so tests can capture it.
func newRootCommand(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "organize-photos",
		Short: "Organize photos into year/month/day directories",
		Long: `Organizes photos by copying them from --input-dir to --output-dir
and structures them in directories by year, month and day.

The structure of directories would be: {year}/{month}/{day}/{file}`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(fs); err != nil {
				return fmt.Errorf("%w\nRun '%s --help' for usage.", err, cmd.CommandPath())
			}
			return organize(fs, cfg, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&cfg.InputDir, "input-dir", "", "Directory where to find photo files")
	flags.StringVar(&cfg.OutputDir, "output-dir", "", "Directory to which photos will be copied in an organized manner")
	_ = cmd.MarkFlagRequired("input-dir")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

// =============================================================================
// Run
// =============================================================================

// organize runs one batch. Per-file failures are printed, not returned; the
// only error is an input directory that cannot be listed.
func organize(fs afero.Fs, cfg config.Config, stdout, stderr io.Writer) error {
	log, _ := logging.ForRun(logging.New(stderr, logging.DefaultLevel))
	sink := console.New(stdout, stderr)

	if _, err := organizer.New(fs, sink, log).Run(cfg.InputDir, cfg.OutputDir); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// Main Entry Point
// =============================================================================

func main() {
	cmd := newRootCommand(afero.NewOsFs(), os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
