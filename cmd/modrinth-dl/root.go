package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/modrinth-downloader/internal/download"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

// usageError marks errors that should print the usage text.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type options struct {
	configPath  string
	outputRoot  string
	concurrency int
	verbose     bool
	dryRun      bool
	reportPath  string
	format      string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "modrinth-dl <manifest-file> <target-version>",
		Short: "Download plugins, datapacks and mods listed in a manifest from Modrinth",
		Long: `modrinth-dl reads a manifest of project names grouped into [plugins],
[datapacks] and [mods] sections and downloads, for each entry, the release
built for the target game version. When no release lists the version, the
newest release built for an older version is used and its file name is
prefixed with [OD_<version>].

Files that already exist are skipped, so re-running is safe.

For interactive mode, use: modrinth-tui`,
		Example: `  modrinth-dl modlist.txt 1.21.1
  modrinth-dl -o server -j 8 modlist.txt 1.20.4
  modrinth-dl --dry-run --report plan.md --format markdown modlist.txt 1.21`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return usageError{fmt.Errorf("expected <manifest-file> and <target-version>, got %d argument(s)", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(cmd.Context(), opts, args[0], args[1], stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.AddCommand(newConfigCommand())

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (TOML)")
	flags.StringVarP(&opts.outputRoot, "output", "o", "", "Output root directory (overrides config)")
	flags.IntVarP(&opts.concurrency, "concurrency", "j", 0, "Maximum parallel items (overrides config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Resolve every entry without downloading")
	flags.StringVar(&opts.reportPath, "report", "", "Write a per-item report to this file")
	flags.StringVar(&opts.format, "format", "", "Report format: table, markdown or csv (overrides config)")

	return cmd
}

// execute runs the command line and maps the result to an exit code.
// Per-item failures never change the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(stderr, "\nInterrupted, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if args == nil {
		args = []string{}
	}
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) || errors.Is(err, download.ErrManifest) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return exitFailure
}
