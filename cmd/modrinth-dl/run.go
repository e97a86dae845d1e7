package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/handiism/modrinth-downloader/internal/config"
	"github.com/handiism/modrinth-downloader/internal/download"
	ioutils "github.com/handiism/modrinth-downloader/internal/io"
	"github.com/handiism/modrinth-downloader/internal/manifest"
	"github.com/handiism/modrinth-downloader/internal/modrinth"
	"github.com/handiism/modrinth-downloader/internal/report"
	"github.com/handiism/modrinth-downloader/internal/version"
)

func loadSettings(opts options) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		var err error
		settings, err = config.Load(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if opts.outputRoot != "" {
		settings.OutputRoot = opts.outputRoot
	}
	if opts.concurrency > 0 {
		settings.MaxConcurrency = opts.concurrency
	}
	if opts.format != "" {
		settings.ReportFormat = opts.format
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}

func runManifest(ctx context.Context, opts options, manifestPath, target string, stdout, stderr io.Writer) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(settings.ReportFormat)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, opts.verbose, uuid.NewString())

	items, warnings, err := manifest.ParseFile(manifestPath)
	if err != nil {
		return fmt.Errorf("%w: %w", download.ErrManifest, err)
	}
	for _, w := range warnings {
		logger.Warn("Ignoring manifest line", "line", w.Line, "reason", w.Message)
	}
	if !version.IsRelease(target) {
		logger.Warn("Target does not look like a release version; exact matches may be rare", "target", target)
	}
	logger.Info("Manifest loaded", "items", len(items), "target", target, "output", settings.OutputRoot, "workers", settings.MaxConcurrency)

	if !opts.dryRun {
		lock, err := ioutils.AcquireRunLock(settings.LockPath())
		if err != nil {
			return err
		}
		defer lock.Release()
	}

	manager := download.NewManager(settings, modrinth.NewClient(settings), progressHandler(logger))
	manager.SetDryRun(opts.dryRun)

	summary, outcomes := manager.Run(ctx, items, target)

	_, _, received := manager.Progress()
	fmt.Fprintln(stdout, report.NewWriter(report.FormatTable).RenderSummary(summary))
	fmt.Fprintf(stdout, "Received %.2f MB\n", float64(received)/1024/1024)

	if opts.reportPath != "" {
		path := opts.reportPath
		if filepath.Ext(path) == "" {
			path += format.Extension()
		}
		content := report.NewWriter(format).Render(outcomes)
		if err := ioutils.WriteFile(context.WithoutCancel(ctx), path, []byte(content+"\n")); err != nil {
			logger.Error("Writing report failed", "path", path, "err", err)
		} else {
			logger.Info("Report written", "path", path)
		}
	}

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Run cancelled", "summary", report.Counts(summary))
		}
		return err
	}
	return nil
}
