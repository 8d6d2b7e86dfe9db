package root

import (
	"io"
	"log/slog"

	"github.com/dtrlanz/markhor-sub000/pkg/logging"
)

// rootFlags holds the global flags every subcommand inherits.
type rootFlags struct {
	workspacePath string
	verbose       bool
	quiet         bool
	debug         bool
	logFilePath   string

	logFile io.Closer
}

// setupLogging installs the default slog.Logger for the process,
// writing to stderr unless --log-file redirects it to a rotating file.
func (f *rootFlags) setupLogging(stderr io.Writer) error {
	level := logging.Level(f.verbose, f.quiet, f.debug)

	if f.logFilePath == "" {
		logging.Setup(stderr, level)
		return nil
	}

	logFile, err := logging.OpenLogFile(f.logFilePath)
	if err != nil {
		logging.Setup(stderr, level)
		slog.Warn("failed to open log file, falling back to stderr", "path", f.logFilePath, "error", err)
		return nil
	}
	f.logFile = logFile
	logging.Setup(logFile, level)
	return nil
}

func (f *rootFlags) closeLogFile() {
	if f.logFile != nil {
		if err := f.logFile.Close(); err != nil {
			slog.Error("failed to close log file", "error", err)
		}
	}
}
