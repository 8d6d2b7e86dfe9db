package logging

import (
	"io"
	"log/slog"
)

// Level picks a slog level from the CLI's -v/-q/--debug flags. --debug
// always wins; otherwise verbose means Debug, quiet means Warn, and the
// default is Info.
func Level(verbose, quiet, debug bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs a text-handler slog.Logger writing to w at level as the
// process default. Called once from the root command's PersistentPreRunE,
// before any subcommand logic runs.
func Setup(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// OpenLogFile opens path as a rotating log destination with the default
// size cap and retention. Callers are responsible for closing the
// returned file once the command finishes.
func OpenLogFile(path string) (*RotatingFile, error) {
	return NewRotatingFile(path, 0, 0)
}
