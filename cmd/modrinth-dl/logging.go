package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/handiism/modrinth-downloader/internal/download"
	"github.com/mattn/go-isatty"
)

// newLogger builds the run logger. Terminals get the coloured text
// formatter; pipes and files get logfmt.
func newLogger(w io.Writer, verbose bool, runID string) *log.Logger {
	formatter := log.LogfmtFormatter
	if shouldColorize(w) {
		formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "modrinth-dl",
		ReportTimestamp: true,
		Formatter:       formatter,
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("run", runID)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// progressHandler renders manager events through logger.
func progressHandler(logger *log.Logger) func(download.ProgressEvent) {
	return func(event download.ProgressEvent) {
		var keyvals []any
		if event.Item != nil {
			keyvals = append(keyvals, "category", event.Item.Category.String(), "query", event.Item.Query)
		}

		switch event.Level {
		case download.LevelError:
			logger.Error(event.Message, keyvals...)
		case download.LevelWarning:
			logger.Warn(event.Message, keyvals...)
		case download.LevelVerbose:
			logger.Debug(event.Message, keyvals...)
		default:
			logger.Info(event.Message, keyvals...)
		}
	}
}
